package hdrhistogram

// LinearIterator walks the histogram in fixed-size value steps
// (valueUnitsPerBucket wide), regardless of how the underlying geometry's
// bucket widths vary. Once the tracked range grows wider than the linear
// step (every bucket past the first, in a typical histogram), several
// consecutive steps report against the same underlying counter.
type LinearIterator[C Counter] struct {
	cursor cursor[C]

	valueUnitsPerBucket                  int64
	currentStepHighestValueReportingLevel int64
	currentStepLowestValueReportingLevel  int64

	value IterationValue
}

// LinearBucketValues returns a LinearIterator over h with the given
// constant step width.
func (h *Histogram[C]) LinearBucketValues(valueUnitsPerBucket int64) *LinearIterator[C] {
	it := &LinearIterator[C]{
		cursor:               newCursor(h),
		valueUnitsPerBucket:  valueUnitsPerBucket,
	}
	it.currentStepHighestValueReportingLevel = valueUnitsPerBucket - 1
	it.currentStepLowestValueReportingLevel = h.g.lowestEquivalentValue(it.currentStepHighestValueReportingLevel)
	return it
}

func (it *LinearIterator[C]) reachedIterationLevel() bool {
	return it.cursor.currentValueAtIndex >= it.currentStepLowestValueReportingLevel || it.cursor.isLastIndex()
}

func (it *LinearIterator[C]) advance() {
	it.currentStepHighestValueReportingLevel += it.valueUnitsPerBucket
	it.currentStepLowestValueReportingLevel = it.cursor.h.g.lowestEquivalentValue(it.currentStepHighestValueReportingLevel)
}

// Next advances the iterator by one linear step. It returns false once
// every recorded value has been reported and the current reporting level
// has passed the end of the slot holding the last recorded value (at once,
// for an empty histogram).
func (it *LinearIterator[C]) Next() bool {
	if !it.cursor.hasMoreData() && it.currentStepHighestValueReportingLevel >= it.cursor.nextValueAtIndex {
		return false
	}
	for {
		if !it.cursor.exhausted() {
			it.cursor.moveNext()
			if it.reachedIterationLevel() {
				value := it.currentStepHighestValueReportingLevel
				it.value = it.cursor.snapshot(value, it.cursor.percentile())
				it.advance()
				it.cursor.commitStep(value)
				return true
			}
			it.cursor.incrementSubBucket()
			continue
		}

		if it.currentStepHighestValueReportingLevel < it.cursor.nextValueAtIndex {
			value := it.currentStepHighestValueReportingLevel
			it.value = it.cursor.snapshot(value, it.cursor.percentile())
			it.advance()
			it.cursor.commitStep(value)
			return true
		}
		return false
	}
}

// Value returns the IterationValue produced by the most recent Next call.
func (it *LinearIterator[C]) Value() IterationValue { return it.value }
