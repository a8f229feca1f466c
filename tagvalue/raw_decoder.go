package tagvalue

import (
	"fmt"

	"github.com/finlib/fixcore/datatype"
	"github.com/finlib/fixcore/errs"
)

// CheckSumFieldLen is the exact byte length of a CheckSum field:
// "10=" + 3 digits + 1 separator.
const CheckSumFieldLen = 3 + CheckSumFieldWidth + 1

// MinFrameLen is the shortest byte length any well-formed frame can have:
// a minimal "8=X<sep>9=0<sep>" header (8 bytes) plus a CheckSum field
// (7 bytes).
const MinFrameLen = 8 + CheckSumFieldLen

// RawDecoder validates and frames a single complete FIX message out of an
// in-memory byte slice, grounded on
// original_source/crates/fefix/src/tagvalue/raw_decoder.rs's RawDecoder.
type RawDecoder struct {
	config Config
}

// NewRawDecoder creates a RawDecoder with the given configuration.
func NewRawDecoder(cfg Config) *RawDecoder {
	return &RawDecoder{config: cfg}
}

// Decode validates data as a single FIX frame: it locates BeginString and
// BodyLength, checks the declared body length against the bytes actually
// present, and — unless disabled via WithVerifyChecksum(false) — verifies
// the trailing CheckSum field. The returned Frame aliases data.
func (d *RawDecoder) Decode(data []byte) (Frame, error) {
	if len(data) < MinFrameLen {
		return Frame{}, fmt.Errorf("%w: frame shorter than minimum %d bytes", errs.ErrLength, MinFrameLen)
	}

	h, err := parseHeaderInfo(data, d.config.separator)
	if err != nil {
		return Frame{}, err
	}

	if h.bodyLength < 0 {
		return Frame{}, fmt.Errorf("%w: negative body length", errs.ErrInvalid)
	}

	bodyStart, bodyEnd := h.bodyRange()
	checksumEnd := bodyEnd + CheckSumFieldLen
	if checksumEnd != len(data) {
		return Frame{}, fmt.Errorf("%w: declared body length %d does not match available data", errs.ErrLength, h.bodyLength)
	}

	if err := verifyCheckSumField(data, bodyEnd, checksumEnd, d.config); err != nil {
		return Frame{}, err
	}

	beginStart, beginEnd := h.beginStringRange()

	return Frame{
		data:       data[:checksumEnd],
		beginRange: [2]int{beginStart, beginEnd},
		bodyRange:  [2]int{bodyStart, bodyEnd},
	}, nil
}

// verifyCheckSumField validates the literal "10=" tag prefix and trailing
// separator of the CheckSum field at data[bodyEnd:checksumEnd], and, if
// cfg enables it, that its value equals the modulo-256 sum of
// data[:bodyEnd].
func verifyCheckSumField(data []byte, bodyEnd, checksumEnd int, cfg Config) error {
	field := data[bodyEnd:checksumEnd]
	if field[0] != '1' || field[1] != '0' || field[2] != '=' {
		return fmt.Errorf("%w: missing CheckSum tag", errs.ErrInvalid)
	}
	if field[len(field)-1] != cfg.separator {
		return fmt.Errorf("%w: CheckSum field not terminated by separator", errs.ErrInvalid)
	}

	if !cfg.verifyChecksum {
		return nil
	}

	value := field[3 : len(field)-1]
	got, err := datatype.CheckSum.Deserialize(value)
	if err != nil {
		return fmt.Errorf("%w: malformed CheckSum value", errs.ErrInvalid)
	}

	want := datatype.Compute(data[:bodyEnd])
	if got != want {
		return fmt.Errorf("%w: want %03d, got %03d", errs.ErrCheckSum, want, got)
	}

	return nil
}
