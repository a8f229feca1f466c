package datatype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/buffer"
)

func TestTZTimestampRoundTripWithZOffset(t *testing.T) {
	want := TZTimestamp{
		Local:     time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC),
		IsZOffset: true,
	}

	buf := buffer.New(32)
	TZTimestampType.Serialize(buf, want)
	require.Equal(t, "20240315-09:30:05Z", string(buf.Bytes()))

	got, err := TZTimestampType.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.True(t, want.Local.Equal(got.Local))
	require.True(t, got.IsZOffset)
}

func TestTZTimestampRoundTripWithHourOffset(t *testing.T) {
	want := TZTimestamp{
		Local:  time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC),
		Offset: -5 * time.Hour,
	}

	buf := buffer.New(32)
	TZTimestampType.Serialize(buf, want)
	require.Equal(t, "20240315-09:30:05-05", string(buf.Bytes()))

	got, err := TZTimestampType.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, want.Offset, got.Offset)
	require.False(t, got.IsZOffset)
}

func TestTZTimestampRoundTripWithHourAndMinuteOffset(t *testing.T) {
	want := TZTimestamp{
		Local:  time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC),
		Offset: 5*time.Hour + 30*time.Minute,
	}

	buf := buffer.New(32)
	TZTimestampType.Serialize(buf, want)
	require.Equal(t, "20240315-09:30:05+05:30", string(buf.Bytes()))

	got, err := TZTimestampType.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, want.Offset, got.Offset)
}

func TestTZTimestampDeserializeRejectsTooShort(t *testing.T) {
	_, err := TZTimestampType.Deserialize([]byte("20240315-09:30:05"))
	require.Error(t, err)
}

func TestTZTimeOnlyRoundTrip(t *testing.T) {
	want := TZTimeOnly{
		Local:  9*time.Hour + 30*time.Minute,
		Offset: 2 * time.Hour,
	}

	buf := buffer.New(16)
	TZTimeOnlyType.Serialize(buf, want)
	require.Equal(t, "09:30:00+02", string(buf.Bytes()))

	got, err := TZTimeOnlyType.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, want.Offset, got.Offset)
	require.Equal(t, want.Local, got.Local)
}
