package datatype

import (
	"github.com/shopspring/decimal"

	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// Decimal is the Codec for FIX's float-family types (Qty, Price,
// PriceOffset, Amt, Percentage and the bare float type), backed by
// shopspring/decimal so that values round-trip without the binary-float
// rounding error a plain float64 would introduce.
var Decimal = Codec[decimal.Decimal]{
	Serialize:        serializeDecimal,
	Deserialize:      deserializeDecimal,
	DeserializeLossy: deserializeDecimalLossy,
}

func serializeDecimal(buf *buffer.Buffer, v decimal.Decimal) {
	buf.Append([]byte(v.String()))
}

func deserializeDecimal(data []byte) (decimal.Decimal, error) {
	if len(data) == 0 {
		return decimal.Decimal{}, errs.ErrEmpty
	}

	v, err := decimal.NewFromString(string(data))
	if err != nil {
		return decimal.Decimal{}, fmtWrap(errs.ErrInvalidCharacter, err)
	}

	return v, nil
}

// deserializeDecimalLossy delegates to the strict parser: shopspring/decimal
// offers no unchecked fast path, and a malformed decimal string has no
// meaningful "best effort" interpretation, so on error this returns the
// zero decimal rather than propagating a value the caller never asked for.
func deserializeDecimalLossy(data []byte) decimal.Decimal {
	v, err := deserializeDecimal(data)
	if err != nil {
		return decimal.Decimal{}
	}

	return v
}
