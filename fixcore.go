// Package fixcore provides convenient top-level constructors over the
// tagvalue package's decoder, streaming decoder, and encoder, for callers
// who don't need direct control over tagvalue.Config. It mirrors the
// teacher repository's root mebo.go, which plays the same role over the
// blob package.
package fixcore

import "github.com/finlib/fixcore/tagvalue"

// NewDecoder creates a RawDecoder for decoding a single, already-complete
// in-memory FIX message, applying opts on top of tagvalue's defaults
// (SOH separator, checksum verification on).
func NewDecoder(opts ...tagvalue.Option) *tagvalue.RawDecoder {
	return tagvalue.NewRawDecoder(tagvalue.NewConfig(opts...))
}

// NewStreamDecoder creates a BufferedDecoder for decoding a FIX message
// whose bytes arrive incrementally.
func NewStreamDecoder(opts ...tagvalue.Option) *tagvalue.BufferedDecoder {
	return tagvalue.NewBufferedDecoder(tagvalue.NewConfig(opts...))
}

// NewEncoder creates an Encoder for building FIX messages.
func NewEncoder(opts ...tagvalue.Option) *tagvalue.Encoder {
	return tagvalue.NewEncoder(tagvalue.NewConfig(opts...))
}
