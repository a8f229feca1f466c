package tagvalue

import "github.com/finlib/fixcore/internal/options"

// DefaultSeparator is the byte FIX uses to terminate every tag=value
// field, ASCII SOH (0x01), per spec §6.
const DefaultSeparator byte = 0x01

// Config holds the two knobs this codec exposes: the field separator byte
// and whether decoding verifies the trailing CheckSum field. No other
// configuration surface exists — no environment variables, files, or
// flags are read here; session-layer and dictionary-driven behavior is
// out of scope (see spec.md §1).
type Config struct {
	separator      byte
	verifyChecksum bool
}

// Option configures a Config, applied via the teacher's generic
// functional-options helper (internal/options).
type Option = options.Option[*Config]

// NewConfig builds a Config starting from its defaults (SOH separator,
// checksum verification on) and applies opts in order.
func NewConfig(opts ...Option) Config {
	cfg := &Config{
		separator:      DefaultSeparator,
		verifyChecksum: true,
	}
	// Config options never fail validation today, but Apply's error
	// return is kept so a future option (e.g. rejecting separator bytes
	// that collide with '=') has somewhere to report it.
	_ = options.Apply[*Config](cfg, opts...)

	return *cfg
}

// WithSeparator overrides the field separator byte. The FIX standard
// itself fixes this at SOH; this exists for interoperating with
// non-conformant producers that substitute a printable byte (commonly '|')
// for readability in logs and fixtures.
func WithSeparator(sep byte) Option {
	return options.NoError[*Config](func(c *Config) {
		c.separator = sep
	})
}

// WithVerifyChecksum toggles CheckSum field verification during decode.
func WithVerifyChecksum(verify bool) Option {
	return options.NoError[*Config](func(c *Config) {
		c.verifyChecksum = verify
	})
}

// Separator returns the configured field separator byte.
func (c Config) Separator() byte {
	return c.separator
}

// VerifyChecksum reports whether decode verifies the CheckSum field.
func (c Config) VerifyChecksum() bool {
	return c.verifyChecksum
}
