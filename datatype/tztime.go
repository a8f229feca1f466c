package datatype

import (
	"time"

	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// TZTimestamp represents FIX's TZTimestamp type: a UTCTimestamp-shaped
// local time plus an explicit UTC offset (or Z for UTC itself). This is a
// supplemental type pulled from original_source/, distinct from
// UTCTimestamp because its wall-clock fields are NOT normalized to UTC.
type TZTimestamp struct {
	Local     time.Time // wall-clock fields only; Local.Location() is ignored
	Offset    time.Duration
	IsZOffset bool
}

// TZTimestampType is the Codec for TZTimestamp:
// YYYYMMDD-HH:MM:SS[Z|+HH|+HH:MM|-HH|-HH:MM].
var TZTimestampType = Codec[TZTimestamp]{
	Serialize:        serializeTZTimestamp,
	Deserialize:      deserializeTZTimestamp,
	DeserializeLossy: deserializeTZTimestampLossy,
}

func serializeTZTimestamp(buf *buffer.Buffer, v TZTimestamp) {
	l := v.Local
	wall := time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), time.UTC)
	serializeUTCTimestamp(buf, wall, false)
	serializeTZOffset(buf, v.Offset, v.IsZOffset)
}

func serializeTZOffset(buf *buffer.Buffer, offset time.Duration, isZ bool) {
	if isZ {
		buf.AppendByte('Z')
		return
	}

	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	buf.AppendByte(sign)

	h := int64(offset / time.Hour)
	m := int64((offset % time.Hour) / time.Minute)
	SerializeUintPadded(buf, uint64(h), Zeros(2))
	if m != 0 {
		buf.AppendByte(':')
		SerializeUintPadded(buf, uint64(m), Zeros(2))
	}
}

func deserializeTZTimestamp(data []byte) (TZTimestamp, error) {
	if len(data) < 18 {
		return TZTimestamp{}, errs.ErrWrongLength
	}

	local, err := deserializeUTCTimestamp(data[:17])
	if err != nil {
		return TZTimestamp{}, err
	}

	offset, isZ, err := parseTZOffset(data[17:])
	if err != nil {
		return TZTimestamp{}, err
	}

	return TZTimestamp{Local: local, Offset: offset, IsZOffset: isZ}, nil
}

func deserializeTZTimestampLossy(data []byte) TZTimestamp {
	v, err := deserializeTZTimestamp(data)
	if err != nil {
		return TZTimestamp{}
	}

	return v
}

func parseTZOffset(data []byte) (time.Duration, bool, error) {
	if len(data) == 0 {
		return 0, false, errs.ErrWrongLength
	}
	if data[0] == 'Z' && len(data) == 1 {
		return 0, true, nil
	}

	if data[0] != '+' && data[0] != '-' {
		return 0, false, errs.ErrInvalidCharacter
	}
	neg := data[0] == '-'
	rest := data[1:]

	var h, m int
	switch len(rest) {
	case 2:
		h = int(deserializeUint64Lossy(rest))
	case 5:
		h = int(deserializeUint64Lossy(rest[0:2]))
		m = int(deserializeUint64Lossy(rest[3:5]))
	default:
		return 0, false, errs.ErrWrongLength
	}

	offset := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	if neg {
		offset = -offset
	}

	return offset, false, nil
}

// TZTimeOnly represents FIX's TZTimeOnly type: HH:MM:SS plus a UTC
// offset. The HH:MM form without seconds is not accepted.
type TZTimeOnly struct {
	Local     time.Duration
	Offset    time.Duration
	IsZOffset bool
}

// TZTimeOnlyType is the Codec for TZTimeOnly.
var TZTimeOnlyType = Codec[TZTimeOnly]{
	Serialize:        serializeTZTimeOnly,
	Deserialize:      deserializeTZTimeOnly,
	DeserializeLossy: deserializeTZTimeOnlyLossy,
}

func serializeTZTimeOnly(buf *buffer.Buffer, v TZTimeOnly) {
	serializeTimeOnly(buf, v.Local, false)
	serializeTZOffset(buf, v.Offset, v.IsZOffset)
}

func deserializeTZTimeOnly(data []byte) (TZTimeOnly, error) {
	if len(data) < 9 {
		return TZTimeOnly{}, errs.ErrWrongLength
	}

	local, err := deserializeUTCTimeOnly(data[:8])
	if err != nil {
		return TZTimeOnly{}, err
	}

	offset, isZ, err := parseTZOffset(data[8:])
	if err != nil {
		return TZTimeOnly{}, err
	}

	return TZTimeOnly{Local: local, Offset: offset, IsZOffset: isZ}, nil
}

func deserializeTZTimeOnlyLossy(data []byte) TZTimeOnly {
	v, err := deserializeTZTimeOnly(data)
	if err != nil {
		return TZTimeOnly{}
	}

	return v
}
