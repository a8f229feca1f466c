package datatype

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/buffer"
)

func TestMonthYearRoundTripWithoutDay(t *testing.T) {
	want := MonthYear{Year: 2024, Month: 3}

	buf := buffer.New(8)
	MonthYearType.Serialize(buf, want)
	require.Equal(t, "202403", string(buf.Bytes()))

	got, err := MonthYearType.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMonthYearRoundTripWithDay(t *testing.T) {
	want := MonthYear{Year: 2024, Month: 3, Day: 15}

	buf := buffer.New(8)
	MonthYearType.Serialize(buf, want)
	require.Equal(t, "20240315", string(buf.Bytes()))

	got, err := MonthYearType.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMonthYearDeserializeRejectsBadMonth(t *testing.T) {
	_, err := MonthYearType.Deserialize([]byte("202413"))
	require.Error(t, err)
}

func TestMonthYearDeserializeRejectsBadDay(t *testing.T) {
	_, err := MonthYearType.Deserialize([]byte("20240332"))
	require.Error(t, err)
}

func TestMonthYearDeserializeLossyFallsBackToZeroValue(t *testing.T) {
	v := MonthYearType.DeserializeLossy([]byte("garbage!"))
	require.Equal(t, MonthYear{}, v)
}
