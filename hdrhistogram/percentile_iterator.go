package hdrhistogram

import "math"

// PercentileIterator walks the histogram emitting one IterationValue per
// percentile tick, with ticks spaced so that they halve the remaining
// distance to 100% every ticksPerHalfDistance steps — dense resolution
// near the tail, where it matters most for latency data, sparse near 0.
//
// Percentiles emits one extra terminal step at 100% after the last real
// value has been walked; this is documented, intentional behavior (see
// spec §9) rather than an off-by-one.
type PercentileIterator[C Counter] struct {
	cursor                     cursor[C]
	ticksPerHalfDistance       int32
	percentileLevelToIterateTo float64
	reachedLastRecordedValue   bool
	value                      IterationValue
}

// Percentiles returns a PercentileIterator over h. ticksPerHalfDistance
// controls tick density; the report formatter's default is 5.
func (h *Histogram[C]) Percentiles(ticksPerHalfDistance int32) *PercentileIterator[C] {
	return &PercentileIterator[C]{
		cursor:               newCursor(h),
		ticksPerHalfDistance: ticksPerHalfDistance,
	}
}

func (it *PercentileIterator[C]) reachedIterationLevel() bool {
	return it.cursor.countAtThisValue > 0 && it.cursor.percentile() >= it.percentileLevelToIterateTo
}

func (it *PercentileIterator[C]) advanceLevel() {
	if it.percentileLevelToIterateTo >= 100 {
		return
	}
	halfDistance := math.Pow(2, math.Floor(math.Log2(100.0/(100.0-it.percentileLevelToIterateTo)))+1)
	reportingTicks := float64(it.ticksPerHalfDistance) * halfDistance
	it.percentileLevelToIterateTo += 100.0 / reportingTicks
}

// Next advances the iterator. It returns false once the terminal 100% tick
// has been emitted (or immediately, for an empty histogram).
func (it *PercentileIterator[C]) Next() bool {
	for {
		if it.cursor.hasMoreData() {
			it.cursor.moveNext()
			if it.reachedIterationLevel() {
				value := it.cursor.h.g.highestEquivalentValue(it.cursor.currentValueAtIndex)
				it.value = it.cursor.snapshot(value, it.percentileLevelToIterateTo)
				it.advanceLevel()
				it.cursor.commitStep(value)
				return true
			}
			it.cursor.incrementSubBucket()
			continue
		}

		if it.cursor.arrayTotalCount == 0 || it.reachedLastRecordedValue {
			return false
		}
		it.reachedLastRecordedValue = true
		value := it.cursor.h.g.highestEquivalentValue(it.cursor.currentValueAtIndex)
		it.value = it.cursor.snapshot(value, 100)
		it.cursor.commitStep(value)
		return true
	}
}

// Value returns the IterationValue produced by the most recent Next call.
func (it *PercentileIterator[C]) Value() IterationValue { return it.value }
