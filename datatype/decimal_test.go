package datatype

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/buffer"
)

func TestDecimalRoundTrip(t *testing.T) {
	buf := buffer.New(16)
	want := decimal.RequireFromString("1234.5600")
	Decimal.Serialize(buf, want)

	got, err := Decimal.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestDecimalDeserializeRejectsGarbage(t *testing.T) {
	_, err := Decimal.Deserialize([]byte("not-a-number"))
	require.Error(t, err)

	_, err = Decimal.Deserialize(nil)
	require.Error(t, err)
}

func TestDecimalDeserializeLossyFallsBackToZero(t *testing.T) {
	v := Decimal.DeserializeLossy([]byte("not-a-number"))
	require.True(t, v.Equal(decimal.Zero))
}
