package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordedValuesVisitsOnlyNonzeroSlots(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	_, err = h.RecordValues(100, 3)
	require.NoError(t, err)
	_, err = h.RecordValues(5000, 2)
	require.NoError(t, err)

	it := h.RecordedValues()

	require.True(t, it.Next())
	first := it.Value()
	require.EqualValues(t, 3, first.CountAddedInThisStep)
	require.Equal(t, int64(100), first.Value)

	require.True(t, it.Next())
	second := it.Value()
	require.EqualValues(t, 2, second.CountAddedInThisStep)
	require.EqualValues(t, 5, second.TotalCountToThisValue)

	require.False(t, it.Next())
}

func TestRecordedValuesEmptyHistogram(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	it := h.RecordedValues()
	require.False(t, it.Next())
}
