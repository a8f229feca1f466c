package datatype

import (
	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// Country, Currency, and Exchange are fixed-width alphabetic code types
// (ISO 3166-1 alpha-2, ISO 4217, ISO 10383 MIC respectively). They share
// one codec shape parameterized only by width, so each is built from
// fixedAlpha rather than hand-written separately.

// Country is the Codec for FIX's Country type: a 2-letter code.
var Country = fixedAlpha(2)

// Currency is the Codec for FIX's Currency type: a 3-letter code.
var Currency = fixedAlpha(3)

// Exchange is the Codec for FIX's Exchange type: a 4-letter MIC code.
var Exchange = fixedAlpha(4)

func fixedAlpha(width int) Codec[string] {
	return Codec[string]{
		Serialize: func(buf *buffer.Buffer, v string) {
			buf.Append([]byte(v))
		},
		Deserialize: func(data []byte) (string, error) {
			if len(data) != width {
				return "", errs.ErrWrongLength
			}

			return string(data), nil
		},
		DeserializeLossy: func(data []byte) string {
			return string(data)
		},
	}
}
