package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPercentileIteratorCadence mirrors the spec's percentile-iterator
// cadence scenario: ten distinct single-count values walked with
// ticksPerHalfDistance=2 produce a specific, non-uniform sequence of
// (percentileLevelIteratedTo, value) steps, including a step that reports
// the same underlying value twice in a row before the cursor advances.
func TestPercentileIteratorCadence(t *testing.T) {
	h, err := New64(1, 10000, 3)
	require.NoError(t, err)

	for v := int64(1); v <= 10; v++ {
		_, err := h.Record(v)
		require.NoError(t, err)
	}

	type step struct {
		level float64
		value int64
	}
	want := []step{
		{0, 1},
		{25, 3},
		{50, 5},
		{62.5, 7},
		{75, 8},
		{81.25, 9},
		{87.5, 9},
		{90.625, 10},
		{100, 10},
	}

	it := h.Percentiles(2)
	var got []step
	for it.Next() {
		iv := it.Value()
		got = append(got, step{iv.PercentileLevelIteratedTo, iv.Value})
	}

	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i].level, got[i].level, 1e-9, "step %d level", i)
		require.Equalf(t, want[i].value, got[i].value, "step %d value", i)
	}
}

func TestPercentileIteratorEmptyHistogram(t *testing.T) {
	h, err := New64(1, 10000, 3)
	require.NoError(t, err)

	it := h.Percentiles(2)
	require.False(t, it.Next())
}
