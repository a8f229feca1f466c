package datatype

import (
	"strconv"

	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// CheckSum is the Codec for FIX's CheckSum type: exactly 3 ASCII digits,
// representing the modulo-256 sum of every byte preceding the CheckSum
// field, including the trailing SOH of the BodyLength field.
var CheckSum = Codec[uint8]{
	Serialize:        serializeCheckSum,
	Deserialize:      deserializeCheckSum,
	DeserializeLossy: deserializeCheckSumLossy,
}

func serializeCheckSum(buf *buffer.Buffer, v uint8) {
	SerializeUintPadded(buf, uint64(v), Zeros(3))
}

func deserializeCheckSum(data []byte) (uint8, error) {
	if len(data) != 3 {
		return 0, errs.ErrWrongLength
	}

	v, err := strconv.ParseUint(string(data), 10, 16)
	if err != nil || v > 255 {
		return 0, errs.ErrOutOfRange
	}

	return uint8(v), nil
}

func deserializeCheckSumLossy(data []byte) uint8 {
	var v uint16
	for _, d := range data {
		if d < '0' || d > '9' {
			continue
		}
		v = v*10 + uint16(d-'0')
	}

	return uint8(v)
}

// Compute returns the modulo-256 sum of data's bytes, the FIX CheckSum
// algorithm.
func Compute(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum += b
	}

	return sum
}
