package reportformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantiled/hdrhistogram/hdrhistogram"
)

func TestWriteDistributionPlainTextContainsFooter(t *testing.T) {
	h, err := hdrhistogram.New64(1, 3600000000, 3)
	require.NoError(t, err)
	for _, v := range []int64{100, 200, 300} {
		_, err := h.Record(v)
		require.NoError(t, err)
	}

	var buf strings.Builder
	err = WriteDistribution(&buf, h, 1, DefaultTicksPerHalfDistance, PlainText, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "#[Mean")
	assert.Contains(t, out, "TotalCount")
	assert.Contains(t, out, "#[Buckets")
}

func TestWriteDistributionCSVUsesInfinityAtHundredPercent(t *testing.T) {
	h, err := hdrhistogram.New64(1, 3600000000, 3)
	require.NoError(t, err)
	_, err = h.Record(500)
	require.NoError(t, err)

	var buf strings.Builder
	err = WriteDistribution(&buf, h, 1, DefaultTicksPerHalfDistance, CSV, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Infinity")
}

func TestWriteDistributionEmptyHistogramStillWritesFooter(t *testing.T) {
	h, err := hdrhistogram.New64(1, 3600000000, 3)
	require.NoError(t, err)

	var buf strings.Builder
	err = WriteDistribution(&buf, h, 1, DefaultTicksPerHalfDistance, PlainText, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "#[Max")
}
