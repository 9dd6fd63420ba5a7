package hdrhistogram

import "math"

// LogarithmicIterator walks the histogram in exponentially growing value
// steps: the first step is valueUnitsInFirstBucket wide, and each
// subsequent step's reporting level is multiplied by logBase.
type LogarithmicIterator[C Counter] struct {
	cursor cursor[C]

	logBase                               float64
	nextValueReportingLevel               float64
	currentStepHighestValueReportingLevel int64
	currentStepLowestValueReportingLevel  int64

	value IterationValue
}

// LogarithmicBucketValues returns a LogarithmicIterator over h. logBase
// must be > 1.
func (h *Histogram[C]) LogarithmicBucketValues(valueUnitsInFirstBucket int64, logBase float64) *LogarithmicIterator[C] {
	it := &LogarithmicIterator[C]{
		cursor:                   newCursor(h),
		logBase:                  logBase,
		nextValueReportingLevel:  float64(valueUnitsInFirstBucket),
	}
	it.currentStepHighestValueReportingLevel = int64(math.Floor(it.nextValueReportingLevel)) - 1
	it.currentStepLowestValueReportingLevel = h.g.lowestEquivalentValue(it.currentStepHighestValueReportingLevel)
	return it
}

func (it *LogarithmicIterator[C]) reachedIterationLevel() bool {
	return it.cursor.currentValueAtIndex >= it.currentStepLowestValueReportingLevel || it.cursor.isLastIndex()
}

func (it *LogarithmicIterator[C]) advance() {
	it.nextValueReportingLevel *= it.logBase
	it.currentStepHighestValueReportingLevel = int64(math.Floor(it.nextValueReportingLevel)) - 1
	it.currentStepLowestValueReportingLevel = it.cursor.h.g.lowestEquivalentValue(it.currentStepHighestValueReportingLevel)
}

// Next advances the iterator by one logarithmic step, following the same
// "reach, emit, maybe advance without moving the cursor" shape as
// LinearIterator.Next.
func (it *LogarithmicIterator[C]) Next() bool {
	if !it.cursor.hasMoreData() && it.nextValueReportingLevel >= float64(it.cursor.nextValueAtIndex) {
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

		if it.nextValueReportingLevel < float64(it.cursor.nextValueAtIndex) {
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
func (it *LogarithmicIterator[C]) Value() IterationValue { return it.value }
