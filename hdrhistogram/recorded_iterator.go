package hdrhistogram

// RecordedIterator walks only the counts-array slots that have a nonzero
// counter, in ascending value order. It reconstructs every distinct
// recorded value and its count without emitting a step for the (typically
// much larger) run of empty slots between them; the cursor still walks
// past each of those slots one at a time.
type RecordedIterator[C Counter] struct {
	cursor cursor[C]
	value  IterationValue
}

// RecordedValues returns a RecordedIterator over h.
func (h *Histogram[C]) RecordedValues() *RecordedIterator[C] {
	return &RecordedIterator[C]{cursor: newCursor(h)}
}

// Next advances to the next nonzero slot. It returns false once every slot
// has been visited.
func (it *RecordedIterator[C]) Next() bool {
	for !it.cursor.exhausted() {
		it.cursor.moveNext()
		if it.cursor.countAtThisValue != 0 {
			value := it.cursor.h.g.highestEquivalentValue(it.cursor.currentValueAtIndex)
			it.value = it.cursor.snapshot(value, it.cursor.percentile())
			it.cursor.commitStep(value)
			it.cursor.incrementSubBucket()
			return true
		}
		it.cursor.incrementSubBucket()
	}
	return false
}

// Value returns the IterationValue produced by the most recent Next call.
func (it *RecordedIterator[C]) Value() IterationValue { return it.value }
