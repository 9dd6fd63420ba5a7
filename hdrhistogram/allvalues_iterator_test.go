package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllValuesVisitsEverySlotIncludingEmpty(t *testing.T) {
	h, err := New64(1, 1000, 3)
	require.NoError(t, err)

	_, err = h.Record(5)
	require.NoError(t, err)

	it := h.AllValues()
	var visited int
	var nonZero int
	for it.Next() {
		visited++
		if it.Value().Count > 0 {
			nonZero++
		}
	}

	require.Equal(t, len(h.counts), visited)
	require.Equal(t, 1, nonZero)
}
