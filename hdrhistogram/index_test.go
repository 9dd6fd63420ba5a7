package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountsIndexForValueBucketZeroIsIdentity(t *testing.T) {
	g, err := newGeometry(1, 3600000000, 3)
	require.NoError(t, err)

	for _, v := range []int64{0, 1, 100, 2047} {
		assert.EqualValues(t, v, g.countsIndexForValue(v), "value %d", v)
	}
}

func TestCountsIndexForValueCrossesIntoBucketOne(t *testing.T) {
	g, err := newGeometry(1, 3600000000, 3)
	require.NoError(t, err)

	idx2048 := g.countsIndexForValue(2048)
	idx2049 := g.countsIndexForValue(2049)
	assert.EqualValues(t, 2048, idx2048)
	assert.Equal(t, idx2048, idx2049, "2048 and 2049 share an equivalence class once bucket width doubles")
}

func TestValueFromIndexRoundTrips(t *testing.T) {
	g, err := newGeometry(1, 3600000000, 3)
	require.NoError(t, err)

	for _, v := range []int64{0, 1, 2047, 2048, 4096, 1 << 20} {
		idx := g.countsIndexForValue(v)
		got := g.valueFromIndex(idx)
		assert.Equal(t, g.lowestEquivalentValue(v), got, "value %d via index %d", v, idx)
	}
}
