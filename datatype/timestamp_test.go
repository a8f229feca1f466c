package datatype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/buffer"
)

func TestUTCTimestampRoundTripWithMillis(t *testing.T) {
	want := time.Date(2024, 3, 15, 9, 30, 5, 250_000_000, time.UTC)

	buf := buffer.New(32)
	UTCTimestamp.Serialize(buf, want)
	require.Equal(t, "20240315-09:30:05.250", string(buf.Bytes()))

	got, err := UTCTimestamp.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestUTCTimestampSerializeWithoutMillis(t *testing.T) {
	want := time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC)

	buf := buffer.New(32)
	SerializeUTCTimestampWithoutMillis(buf, want)
	require.Equal(t, "20240315-09:30:05", string(buf.Bytes()))

	got, err := UTCTimestamp.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestUTCTimestampDeserializeRejectsWrongLength(t *testing.T) {
	_, err := UTCTimestamp.Deserialize([]byte("20240315"))
	require.Error(t, err)
}

func TestUTCTimestampDeserializeLossyFallsBackToZeroTime(t *testing.T) {
	v := UTCTimestamp.DeserializeLossy([]byte("garbage"))
	require.True(t, v.IsZero())
}

func TestUTCDateOnlyRoundTrip(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	buf := buffer.New(8)
	UTCDateOnly.Serialize(buf, want)
	require.Equal(t, "20240315", string(buf.Bytes()))

	got, err := UTCDateOnly.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestUTCTimeOnlyRoundTrip(t *testing.T) {
	want := 9*time.Hour + 30*time.Minute + 5*time.Second

	buf := buffer.New(16)
	UTCTimeOnly.Serialize(buf, want)
	require.Equal(t, "09:30:05", string(buf.Bytes()))

	got, err := UTCTimeOnly.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestUTCTimeOnlyDeserializeRejectsWrongLength(t *testing.T) {
	_, err := UTCTimeOnly.Deserialize([]byte("09:30"))
	require.Error(t, err)
}
