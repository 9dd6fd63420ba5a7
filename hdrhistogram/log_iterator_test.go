package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogarithmicIteratorCoversAllRecordedValues(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	for _, v := range []int64{1, 100, 10000, 1000000} {
		_, err := h.Record(v)
		require.NoError(t, err)
	}

	it := h.LogarithmicBucketValues(1, 2)
	var totalCounted uint64
	var lastValue int64 = -1
	for it.Next() {
		iv := it.Value()
		require.GreaterOrEqual(t, iv.Value, lastValue)
		lastValue = iv.Value
		totalCounted += iv.CountAddedInThisStep
	}
	require.EqualValues(t, h.TotalCount(), totalCounted)
}
