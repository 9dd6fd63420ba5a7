package hdrhistogram

import "math"

// ValueAtPercentile returns the recorded value at percentile p (0..100),
// 0 if the histogram is empty. p is adjusted down by one ULP before
// converting to a count threshold, which keeps a percentile that lands
// exactly on a count boundary (e.g. 50.0 over an even totalCount) from
// rounding up into the next bucket.
func (h *Histogram[C]) ValueAtPercentile(p float64) int64 {
	if h.totalCount == 0 {
		return 0
	}

	adjusted := p
	if adjusted > 100 {
		adjusted = 100
	}
	adjusted = math.Nextafter(adjusted, math.Inf(-1))
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > 100 {
		adjusted = 100
	}

	threshold := int64(math.Ceil(adjusted / 100 * float64(h.totalCount)))
	if threshold < 1 {
		threshold = 1
	}

	var total int64
	for i, c := range h.counts {
		total += int64(c)
		if total >= threshold {
			v := h.g.valueFromIndex(int32(i))
			if p == 0 {
				return h.g.lowestEquivalentValue(v)
			}
			return h.g.highestEquivalentValue(v)
		}
	}
	return 0
}

// PercentileAtOrBelowValue returns the percentile (0..100) of recorded
// values at or below v, 100 if the histogram is empty.
func (h *Histogram[C]) PercentileAtOrBelowValue(v int64) float64 {
	if h.totalCount == 0 {
		return 100
	}

	targetIdx := h.g.countsIndexForValue(v)
	if targetIdx < 0 {
		targetIdx = 0
	}
	if int(targetIdx) >= len(h.counts) {
		targetIdx = int32(len(h.counts) - 1)
	}

	var sum int64
	for i := int32(0); i <= targetIdx; i++ {
		sum += int64(h.counts[i])
	}
	return 100 * float64(sum) / float64(h.totalCount)
}
