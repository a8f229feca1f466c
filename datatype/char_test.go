package datatype

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/buffer"
)

func TestCharRoundTrip(t *testing.T) {
	buf := buffer.New(1)
	Char.Serialize(buf, '1')
	require.Equal(t, "1", string(buf.Bytes()))

	v, err := Char.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, byte('1'), v)
}

func TestCharDeserializeRejectsWrongLength(t *testing.T) {
	_, err := Char.Deserialize([]byte("12"))
	require.Error(t, err)

	_, err = Char.Deserialize(nil)
	require.Error(t, err)
}

func TestMultipleCharsRoundTrip(t *testing.T) {
	buf := buffer.New(8)
	MultipleChars.Serialize(buf, []byte{'2', '3', '4', '6'})
	require.Equal(t, "2 3 4 6", string(buf.Bytes()))

	v, err := MultipleChars.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, []byte{'2', '3', '4', '6'}, v)
}

func TestMultipleCharsDeserializeRejectsBadSpacing(t *testing.T) {
	_, err := MultipleChars.Deserialize([]byte("2  3"))
	require.Error(t, err)

	_, err = MultipleChars.Deserialize([]byte("2 "))
	require.Error(t, err)
}

func TestMultipleCharsDeserializeEmptyYieldsEmptySequence(t *testing.T) {
	v, err := MultipleChars.Deserialize(nil)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestMultipleCharsDeserializeLossyStripsSpaces(t *testing.T) {
	v := MultipleChars.DeserializeLossy([]byte("2  3 4"))
	require.Equal(t, []byte{'2', '3', '4'}, v)
}

func TestMultipleStringsRoundTrip(t *testing.T) {
	buf := buffer.New(16)
	MultipleStrings.Serialize(buf, []string{"abc", "def", "ghi"})
	require.Equal(t, "abc def ghi", string(buf.Bytes()))

	v, err := MultipleStrings.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, []string{"abc", "def", "ghi"}, v)
}

func TestMultipleStringsDeserializeEmptyYieldsEmptySequence(t *testing.T) {
	v, err := MultipleStrings.Deserialize(nil)
	require.NoError(t, err)
	require.Empty(t, v)
}
