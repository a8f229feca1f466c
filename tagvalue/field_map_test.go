package tagvalue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finlib/fixcore/datatype"
	"github.com/finlib/fixcore/errs"
)

func TestFieldMapRawLookup(t *testing.T) {
	fm, err := NewFieldMap([]byte("35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|"), '|')
	require.NoError(t, err)

	v, ok := fm.Raw(49)
	require.True(t, ok)
	require.Equal(t, "AFUNDMGR", string(v))

	_, ok = fm.Raw(999)
	require.False(t, ok)
}

func TestFieldMapTypedLookup(t *testing.T) {
	fm, err := NewFieldMap([]byte("35=D|59=0|"), '|')
	require.NoError(t, err)

	v, err := FV(fm, 59, datatype.UInt)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)

	_, err = FV(fm, 1, datatype.UInt)
	require.True(t, errors.Is(err, errs.ErrFieldMissing))
}

func TestFieldMapFirstOccurrenceWinsOnDuplicateTags(t *testing.T) {
	fm, err := NewFieldMap([]byte("58=first|58=second|"), '|')
	require.NoError(t, err)

	v, ok := fm.Raw(58)
	require.True(t, ok)
	require.Equal(t, "first", string(v))

	require.Len(t, fm.Fields(), 2, "duplicate must still be visible via Fields")
}

func TestFieldMapRejectsMalformedPayload(t *testing.T) {
	_, err := NewFieldMap([]byte("35D|"), '|')
	require.Error(t, err)

	_, err = NewFieldMap([]byte("35=D"), '|')
	require.Error(t, err)
}
