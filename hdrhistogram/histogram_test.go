package hdrhistogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadGeometry(t *testing.T) {
	_, err := New64(0, 100, 3)
	assert.ErrorIs(t, err, ErrLowestDiscernibleValueTooSmall)
}

func TestRecordAndQueryBasics(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	ok, err := h.Record(1000)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.RecordValues(2000, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.EqualValues(t, 6, h.TotalCount())
	assert.EqualValues(t, 1, h.CountForValue(1000))
	assert.EqualValues(t, 5, h.CountForValue(2000))
	assert.Equal(t, int64(2000), h.Max())
	assert.Equal(t, int64(1000), h.MinNonZero())
	assert.Equal(t, int64(1000), h.Min())
}

func TestRecordRejectsOutOfRangeWithoutAutoResize(t *testing.T) {
	h, err := New64(1, 1000, 3)
	require.NoError(t, err)

	ok, err := h.Record(1_000_000)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestRecordNegativeValueIsRejected(t *testing.T) {
	h, err := New64(1, 1000, 3)
	require.NoError(t, err)

	ok, err := h.Record(-1)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestResetClearsCountsButKeepsCapacity(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)
	_, _ = h.RecordValues(1000, 5)
	before := len(h.counts)

	h.Reset()

	assert.EqualValues(t, 0, h.TotalCount())
	assert.Equal(t, int64(0), h.Max())
	assert.Equal(t, int64(math.MaxInt64), h.MinNonZero())
	assert.Equal(t, before, len(h.counts))
}

func TestCoordinatedOmissionCorrectionBackfills(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	ok, err := h.RecordCorrectedValue(4, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.EqualValues(t, 4, h.TotalCount())
	for _, v := range []int64{1, 2, 3, 4} {
		assert.EqualValuesf(t, 1, h.CountForValue(v), "value %d", v)
	}
}

func TestCoordinatedOmissionNoOpBelowInterval(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	_, err = h.RecordCorrectedValue(5, 10)
	require.NoError(t, err)

	assert.EqualValues(t, 1, h.TotalCount())
	assert.EqualValues(t, 1, h.CountForValue(5))
}

func TestLongTailPercentileWithCoordinatedOmission(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		_, err := h.RecordCorrectedValue(1000, 10000)
		require.NoError(t, err)
	}
	_, err = h.RecordCorrectedValue(100_000_000, 10000)
	require.NoError(t, err)

	assert.EqualValues(t, 20000, h.TotalCount())
	assert.Equal(t, int64(1000), h.ValueAtPercentile(50))
	assert.Greater(t, h.ValueAtPercentile(99.9), int64(1000))
}

func TestRawRecordingPathOmitsCorrection(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		_, err := h.Record(1000)
		require.NoError(t, err)
	}
	_, err = h.Record(100_000_000)
	require.NoError(t, err)

	assert.EqualValues(t, 10001, h.TotalCount())
	assert.InDelta(t, 99.99, h.PercentileAtOrBelowValue(5000), 0.01)
}

func TestAutoResizeGrowsBucketCountAndNeverShrinks(t *testing.T) {
	h, err := NewAutoResizing64(3)
	require.NoError(t, err)

	ok, err := h.Record((int64(1) << 62) - 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 52, h.BucketCount())
	assert.Equal(t, 54272, len(h.counts))

	ok, err = h.Record(math.MaxInt64)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 53, h.BucketCount())
	assert.Equal(t, 55296, len(h.counts))
}

func TestAutoResizePreservesAlreadyRecordedCounts(t *testing.T) {
	h, err := NewAutoResizing64(3)
	require.NoError(t, err)

	_, err = h.Record(10)
	require.NoError(t, err)
	_, err = h.Record(1 << 40)
	require.NoError(t, err)

	assert.EqualValues(t, 1, h.CountForValue(10))
	assert.EqualValues(t, 2, h.TotalCount())
}

func TestEqualIgnoresCountsArrayLength(t *testing.T) {
	a, err := New64(1, 1000, 3)
	require.NoError(t, err)
	b, err := NewAutoResizing64(3)
	require.NoError(t, err)

	_, _ = a.RecordValues(50, 3)
	_, _ = b.RecordValues(50, 3)

	assert.True(t, a.Equal(b))

	_, _ = b.RecordValues(50, 1)
	assert.False(t, a.Equal(b))
}

func TestMeanAndStdDeviation(t *testing.T) {
	h, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	for _, v := range []int64{10, 20, 30, 40, 50} {
		_, err := h.Record(v)
		require.NoError(t, err)
	}

	assert.InDelta(t, 30, h.Mean(), 1)
	assert.Greater(t, h.StdDeviation(), 0.0)
}

func TestEstimatedFootprintGrowsWithCountsArray(t *testing.T) {
	small, err := New64(1, 1000, 3)
	require.NoError(t, err)
	large, err := New64(1, 3600000000, 3)
	require.NoError(t, err)

	assert.Less(t, small.EstimatedFootprintInBytes(), large.EstimatedFootprintInBytes())
}
