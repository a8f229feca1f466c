package datatype

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/buffer"
)

func TestStrRoundTrip(t *testing.T) {
	buf := buffer.New(16)
	Str.Serialize(buf, "AFUNDMGR")
	require.Equal(t, "AFUNDMGR", string(buf.Bytes()))

	v, err := Str.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "AFUNDMGR", v)
}

func TestStrDeserializeRejectsInvalidUTF8(t *testing.T) {
	_, err := Str.Deserialize([]byte{0xff, 0xfe})
	require.Error(t, err)
}

func TestStrDeserializeLossyNeverErrors(t *testing.T) {
	v := Str.DeserializeLossy([]byte{0xff, 0xfe})
	require.NotEmpty(t, v)
}

func TestDataRoundTripCopies(t *testing.T) {
	buf := buffer.New(8)
	src := []byte{0x00, 0x01, 0xff}
	Data.Serialize(buf, src)

	v, err := Data.Deserialize(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, src, v)

	// Deserialize must copy, not alias the input.
	buf.Bytes()[0] = 0x42
	require.Equal(t, byte(0x00), v[0])
}
