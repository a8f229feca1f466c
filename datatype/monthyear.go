package datatype

import (
	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// MonthYear represents FIX's MonthYear type: a year and month, with an
// optional day-of-month. Week codes (e.g. "w2") are not accepted: every
// byte must be a digit. This is a supplemental type pulled
// from original_source/fefix/src/tagvalue/datatypes/mod.rs, which
// spec.md's distillation names only in its type table without detail.
type MonthYear struct {
	Year  int
	Month int
	// Day is 1-31 when present, 0 when the value carries no day component.
	Day int
}

// MonthYearType is the Codec for MonthYear: YYYYMM, or YYYYMM plus a
// 2-digit day (YYYYMMDD).
var MonthYearType = Codec[MonthYear]{
	Serialize:        serializeMonthYear,
	Deserialize:      deserializeMonthYear,
	DeserializeLossy: deserializeMonthYearLossy,
}

func serializeMonthYear(buf *buffer.Buffer, v MonthYear) {
	SerializeUintPadded(buf, uint64(v.Year), Zeros(4))
	SerializeUintPadded(buf, uint64(v.Month), Zeros(2))
	if v.Day > 0 {
		SerializeUintPadded(buf, uint64(v.Day), Zeros(2))
	}
}

func deserializeMonthYear(data []byte) (MonthYear, error) {
	switch len(data) {
	case 6, 8:
	default:
		return MonthYear{}, errs.ErrWrongLength
	}
	for _, b := range data {
		if b < '0' || b > '9' {
			return MonthYear{}, errs.ErrInvalidCharacter
		}
	}

	year := int(deserializeUint64Lossy(data[0:4]))
	month := int(deserializeUint64Lossy(data[4:6]))
	if month < 1 || month > 12 {
		return MonthYear{}, errs.ErrOutOfRange
	}

	day := 0
	if len(data) == 8 {
		day = int(deserializeUint64Lossy(data[6:8]))
		if day < 1 || day > 31 {
			return MonthYear{}, errs.ErrOutOfRange
		}
	}

	return MonthYear{Year: year, Month: month, Day: day}, nil
}

func deserializeMonthYearLossy(data []byte) MonthYear {
	v, err := deserializeMonthYear(data)
	if err != nil {
		return MonthYear{}
	}

	return v
}
