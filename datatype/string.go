package datatype

import (
	"unicode/utf8"

	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// Str is the Codec for FIX's String-family types (String, MultipleValueString
// as a single token, Country/Currency/Exchange aside from their fixed-width
// validation, and most freeform text fields). It requires valid UTF-8.
var Str = Codec[string]{
	Serialize:        serializeStr,
	Deserialize:      deserializeStr,
	DeserializeLossy: deserializeStrLossy,
}

// Data is the Codec for FIX's raw Data type (e.g. SecureData, XmlData):
// an arbitrary byte span with no UTF-8 requirement, used alongside a
// preceding Length field the caller supplies out of band.
var Data = Codec[[]byte]{
	Serialize:        serializeData,
	Deserialize:      deserializeData,
	DeserializeLossy: deserializeDataLossy,
}

func serializeStr(buf *buffer.Buffer, v string) {
	buf.Append([]byte(v))
}

func deserializeStr(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errs.ErrInvalidUTF8
	}

	return string(data), nil
}

// deserializeStrLossy skips the UTF-8 validity check: callers that accept
// the input as fully trusted bytes get a string view even over malformed
// sequences, which Go's string type tolerates without panicking.
func deserializeStrLossy(data []byte) string {
	return string(data)
}

func serializeData(buf *buffer.Buffer, v []byte) {
	buf.Append(v)
}

func deserializeData(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

func deserializeDataLossy(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	return out
}
