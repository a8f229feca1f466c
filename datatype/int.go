package datatype

import (
	"strconv"

	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// Int is the Codec for a signed FIX Int/SeqNum-shaped field, represented as
// an int64.
var Int = Codec[int64]{
	Serialize:        serializeInt64,
	Deserialize:      deserializeInt64,
	DeserializeLossy: deserializeInt64Lossy,
}

// UInt is the Codec for an unsigned FIX Int-shaped field (Length, TagNum,
// NumInGroup), represented as a uint64.
var UInt = Codec[uint64]{
	Serialize:        serializeUint64,
	Deserialize:      deserializeUint64,
	DeserializeLossy: deserializeUint64Lossy,
}

func serializeInt64(buf *buffer.Buffer, v int64) {
	buf.Append(strconv.AppendInt(nil, v, 10))
}

func serializeUint64(buf *buffer.Buffer, v uint64) {
	buf.Append(strconv.AppendUint(nil, v, 10))
}

// deserializeInt64 performs a strict parse: the value must consist of an
// optional leading '-' or '+' followed by at least one ASCII digit, and
// must fit in an int64.
func deserializeInt64(data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, errs.ErrEmpty
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmtWrap(errs.ErrInvalidCharacter, err)
	}

	return v, nil
}

func deserializeUint64(data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, errs.ErrEmpty
	}

	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, fmtWrap(errs.ErrInvalidCharacter, err)
	}

	return v, nil
}

// deserializeInt64Lossy performs a best-effort accumulation without bounds
// checking or rejection of malformed input, for use once a message has
// already been validated elsewhere.
//
// The sign byte is detected and consumed before any digit accumulates into
// the running total; negation is applied once at the end. An earlier
// revision of this routine accumulated the '-' byte itself as though it
// were a digit before negating, corrupting every negative value it
// touched (e.g. "-5" lost its sign and became 45 via the algorithm
// intended to produce -5). Skipping the sign byte first fixes this.
func deserializeInt64Lossy(data []byte) int64 {
	if len(data) == 0 {
		return 0
	}

	neg := false
	i := 0
	if data[0] == '-' {
		neg = true
		i = 1
	}

	var v int64
	for ; i < len(data); i++ {
		d := data[i]
		if d < '0' || d > '9' {
			continue
		}
		v = v*10 + int64(d-'0')
	}

	if neg {
		v = -v
	}

	return v
}

func deserializeUint64Lossy(data []byte) uint64 {
	var v uint64
	for _, d := range data {
		if d < '0' || d > '9' {
			continue
		}
		v = v*10 + uint64(d-'0')
	}

	return v
}
