package datatype

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/buffer"
)

func TestSerializeUintPaddedLeftPads(t *testing.T) {
	buf := buffer.New(8)
	SerializeUintPadded(buf, 4, Zeros(6))
	require.Equal(t, "000004", string(buf.Bytes()))
}

func TestSerializeUintPaddedDoesNotTruncateWiderValues(t *testing.T) {
	buf := buffer.New(8)
	SerializeUintPadded(buf, 1234567, Zeros(3))
	require.Equal(t, "1234567", string(buf.Bytes()))
}

func TestSerializeUintPaddedExactWidth(t *testing.T) {
	buf := buffer.New(8)
	SerializeUintPadded(buf, 123, Zeros(3))
	require.Equal(t, "123", string(buf.Bytes()))
}
