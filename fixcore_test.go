package fixcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/tagvalue"
)

func TestEncodeThenDecodeRoundTrip(t *testing.T) {
	enc := NewEncoder(tagvalue.WithSeparator('|'))
	h := enc.StartMessage([]byte("FIX.4.4"), []byte("D"))
	h.SetRaw(11, []byte("ORD1"))
	out, err := h.Wrap()
	require.NoError(t, err)

	dec := NewDecoder(tagvalue.WithSeparator('|'))
	frame, err := dec.Decode(out)
	require.NoError(t, err)
	require.Equal(t, "FIX.4.4", string(frame.BeginString()))

	fm, err := tagvalue.NewFieldMap(frame.Payload(), '|')
	require.NoError(t, err)
	v, ok := fm.Raw(11)
	require.True(t, ok)
	require.Equal(t, "ORD1", string(v))
}

func TestNewStreamDecoderDefaults(t *testing.T) {
	dec := NewStreamDecoder()
	require.Equal(t, 0, dec.Len())
}
