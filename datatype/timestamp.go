package datatype

import (
	"time"

	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// WithMilliseconds names the choice between the timestamp form with the
// ".sss" millisecond suffix (21 bytes total for UTCTimestamp) and the form
// without it (17 bytes). No serializer in this package takes it as a
// parameter: UTCTimestamp.Serialize always writes the suffix and
// SerializeUTCTimestampWithoutMillis always omits it.
type WithMilliseconds bool

// UTCTimestamp is the Codec for FIX's UTCTimestamp type:
// YYYYMMDD-HH:MM:SS or YYYYMMDD-HH:MM:SS.sss, always in UTC. Serialize
// includes the millisecond suffix by default; use
// SerializeUTCTimestampWithoutMillis for the 17-byte form.
//
// original_source/fefix/src/tagvalue/datatypes/mod.rs implements only the
// serialize half of this type; its deserialize always returns an error.
// This is one of the features the distillation into spec.md dropped
// entirely — this module implements both directions.
var UTCTimestamp = Codec[time.Time]{
	Serialize:        func(buf *buffer.Buffer, v time.Time) { serializeUTCTimestamp(buf, v, true) },
	Deserialize:      deserializeUTCTimestamp,
	DeserializeLossy: deserializeUTCTimestampLossy,
}

// SerializeUTCTimestampWithoutMillis serializes v in the 17-byte form,
// omitting the ".sss" suffix.
func SerializeUTCTimestampWithoutMillis(buf *buffer.Buffer, v time.Time) {
	serializeUTCTimestamp(buf, v, false)
}

func serializeUTCTimestamp(buf *buffer.Buffer, v time.Time, millis bool) {
	v = v.UTC()
	SerializeUintPadded(buf, uint64(v.Year()), Zeros(4))
	SerializeUintPadded(buf, uint64(v.Month()), Zeros(2))
	SerializeUintPadded(buf, uint64(v.Day()), Zeros(2))
	buf.AppendByte('-')
	SerializeUintPadded(buf, uint64(v.Hour()), Zeros(2))
	buf.AppendByte(':')
	SerializeUintPadded(buf, uint64(v.Minute()), Zeros(2))
	buf.AppendByte(':')
	SerializeUintPadded(buf, uint64(v.Second()), Zeros(2))
	if millis {
		buf.AppendByte('.')
		SerializeUintPadded(buf, uint64(v.Nanosecond()/1e6), Zeros(3))
	}
}

func deserializeUTCTimestamp(data []byte) (time.Time, error) {
	switch len(data) {
	case 17:
		return time.Parse("20060102-15:04:05", string(data))
	case 21:
		return time.Parse("20060102-15:04:05.000", string(data))
	default:
		return time.Time{}, errs.ErrWrongLength
	}
}

// deserializeUTCTimestampLossy falls back to the zero time on any parse
// failure instead of returning an error, but otherwise parses identically
// to the strict path: there is no meaningfully cheaper parse for a
// calendar timestamp.
func deserializeUTCTimestampLossy(data []byte) time.Time {
	v, err := deserializeUTCTimestamp(data)
	if err != nil {
		return time.Time{}
	}

	return v
}

// UTCDateOnly is the Codec for FIX's UTCDateOnly type: YYYYMMDD.
var UTCDateOnly = dateOnlyCodec("20060102")

// LocalMktDate is the Codec for FIX's LocalMktDate type: YYYYMMDD,
// interpreted in a locally-significant (non-UTC) calendar.
var LocalMktDate = dateOnlyCodec("20060102")

func dateOnlyCodec(layout string) Codec[time.Time] {
	return Codec[time.Time]{
		Serialize: func(buf *buffer.Buffer, v time.Time) {
			SerializeUintPadded(buf, uint64(v.Year()), Zeros(4))
			SerializeUintPadded(buf, uint64(v.Month()), Zeros(2))
			SerializeUintPadded(buf, uint64(v.Day()), Zeros(2))
		},
		Deserialize: func(data []byte) (time.Time, error) {
			if len(data) != 8 {
				return time.Time{}, errs.ErrWrongLength
			}

			return time.Parse(layout, string(data))
		},
		DeserializeLossy: func(data []byte) time.Time {
			if len(data) != 8 {
				return time.Time{}
			}
			v, err := time.Parse(layout, string(data))
			if err != nil {
				return time.Time{}
			}

			return v
		},
	}
}

// UTCTimeOnly is the Codec for FIX's UTCTimeOnly type: HH:MM:SS or
// HH:MM:SS.sss, always UTC.
var UTCTimeOnly = Codec[time.Duration]{
	Serialize:        func(buf *buffer.Buffer, v time.Duration) { serializeTimeOnly(buf, v, false) },
	Deserialize:      deserializeUTCTimeOnly,
	DeserializeLossy: deserializeUTCTimeOnlyLossy,
}

func serializeTimeOnly(buf *buffer.Buffer, v time.Duration, millis bool) {
	h := int64(v / time.Hour)
	m := int64((v % time.Hour) / time.Minute)
	s := int64((v % time.Minute) / time.Second)
	ms := int64((v % time.Second) / time.Millisecond)

	SerializeUintPadded(buf, uint64(h), Zeros(2))
	buf.AppendByte(':')
	SerializeUintPadded(buf, uint64(m), Zeros(2))
	buf.AppendByte(':')
	SerializeUintPadded(buf, uint64(s), Zeros(2))
	if millis {
		buf.AppendByte('.')
		SerializeUintPadded(buf, uint64(ms), Zeros(3))
	}
}

func deserializeUTCTimeOnly(data []byte) (time.Duration, error) {
	var layout string
	switch len(data) {
	case 8:
		layout = "15:04:05"
	case 12:
		layout = "15:04:05.000"
	default:
		return 0, errs.ErrWrongLength
	}

	t, err := time.Parse(layout, string(data))
	if err != nil {
		return 0, err
	}

	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()), nil
}

func deserializeUTCTimeOnlyLossy(data []byte) time.Duration {
	v, err := deserializeUTCTimeOnly(data)
	if err != nil {
		return 0
	}

	return v
}
