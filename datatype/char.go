package datatype

import (
	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// Char is the Codec for FIX's single-character Char type.
var Char = Codec[byte]{
	Serialize:        serializeChar,
	Deserialize:      deserializeChar,
	DeserializeLossy: deserializeCharLossy,
}

func serializeChar(buf *buffer.Buffer, v byte) {
	buf.AppendByte(v)
}

func deserializeChar(data []byte) (byte, error) {
	if len(data) != 1 {
		return 0, errs.ErrWrongLength
	}

	return data[0], nil
}

func deserializeCharLossy(data []byte) byte {
	if len(data) == 0 {
		return 0
	}

	return data[0]
}

// MultipleChars is the Codec for FIX's MultipleCharValue type: a
// space-separated list of single-character tokens (e.g. "2 3 4 6").
var MultipleChars = Codec[[]byte]{
	Serialize:        serializeMultipleChars,
	Deserialize:      deserializeMultipleChars,
	DeserializeLossy: deserializeMultipleCharsLossy,
}

func serializeMultipleChars(buf *buffer.Buffer, v []byte) {
	for i, c := range v {
		if i > 0 {
			buf.AppendByte(' ')
		}
		buf.AppendByte(c)
	}
}

// deserializeMultipleChars strictly validates that the value is a
// space-separated sequence of exactly one-character tokens, returning the
// characters with the separators removed.
func deserializeMultipleChars(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out := make([]byte, 0, (len(data)+1)/2)
	expectChar := true
	for _, b := range data {
		switch {
		case expectChar:
			if b == ' ' {
				return nil, errs.ErrInvalidCharacter
			}
			out = append(out, b)
			expectChar = false
		case b == ' ':
			expectChar = true
		default:
			return nil, errs.ErrInvalidCharacter
		}
	}
	if expectChar {
		// trailing separator with no following char
		return nil, errs.ErrInvalidCharacter
	}

	return out, nil
}

// deserializeMultipleCharsLossy collects every non-space byte, without
// validating spacing.
func deserializeMultipleCharsLossy(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b != ' ' {
			out = append(out, b)
		}
	}

	return out
}

// MultipleStrings is the Codec for FIX's MultipleValueString /
// MultipleStringValue types: a space-separated list of string tokens.
var MultipleStrings = Codec[[]string]{
	Serialize:        serializeMultipleStrings,
	Deserialize:      deserializeMultipleStrings,
	DeserializeLossy: deserializeMultipleStringsLossy,
}

func serializeMultipleStrings(buf *buffer.Buffer, v []string) {
	for i, s := range v {
		if i > 0 {
			buf.AppendByte(' ')
		}
		buf.Append([]byte(s))
	}
}

func deserializeMultipleStrings(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return splitSpace(data), nil
}

func deserializeMultipleStringsLossy(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	return splitSpace(data)
}

func splitSpace(data []byte) []string {
	var out []string
	start := 0
	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == ' ' {
			out = append(out, string(data[start:i]))
			start = i + 1
		}
	}

	return out
}
