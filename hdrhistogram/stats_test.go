package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAtPercentileEmptyHistogram(t *testing.T) {
	h, err := New64(1, 1000, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(0), h.ValueAtPercentile(50))
}

func TestValueAtPercentileSingleValue(t *testing.T) {
	h, err := New64(1, 1000, 3)
	require.NoError(t, err)

	_, err = h.Record(42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), h.ValueAtPercentile(0))
	assert.Equal(t, int64(42), h.ValueAtPercentile(50))
	assert.Equal(t, int64(42), h.ValueAtPercentile(100))
}

func TestPercentileAtOrBelowValueEmptyHistogram(t *testing.T) {
	h, err := New64(1, 1000, 3)
	require.NoError(t, err)

	assert.Equal(t, 100.0, h.PercentileAtOrBelowValue(500))
}

func TestPercentileAtOrBelowValueMonotonic(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	for _, v := range []int64{10, 20, 30, 40, 50} {
		_, err := h.Record(v)
		require.NoError(t, err)
	}

	prev := -1.0
	for _, v := range []int64{5, 15, 25, 35, 45, 55} {
		p := h.PercentileAtOrBelowValue(v)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
	assert.Equal(t, 100.0, h.PercentileAtOrBelowValue(55))
}
