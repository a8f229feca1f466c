package datatype

import (
	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// Bool is the Codec for FIX's Boolean type: exactly one byte, 'Y' or 'N'.
var Bool = Codec[bool]{
	Serialize:        serializeBool,
	Deserialize:      deserializeBool,
	DeserializeLossy: deserializeBoolLossy,
}

func serializeBool(buf *buffer.Buffer, v bool) {
	if v {
		buf.AppendByte('Y')
		return
	}
	buf.AppendByte('N')
}

func deserializeBool(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, errs.ErrWrongLength
	}

	switch data[0] {
	case 'Y':
		return true, nil
	case 'N':
		return false, nil
	default:
		return false, errs.ErrInvalidCharacter
	}
}

// deserializeBoolLossy treats any byte other than 'Y' as false, matching
// the strict parser's accepted alphabet on well-formed input without
// rejecting a single stray byte.
func deserializeBoolLossy(data []byte) bool {
	if len(data) != 1 {
		return false
	}

	return data[0] == 'Y'
}
