package hdrhistogram

// AllValuesIterator walks every counts-array slot exactly once, including
// the ones with a zero counter. It is mainly useful for exporting a dense
// histogram (e.g. for a downstream system that expects one row per slot
// regardless of occupancy) rather than for analysis.
type AllValuesIterator[C Counter] struct {
	cursor cursor[C]
	value  IterationValue
}

// AllValues returns an AllValuesIterator over h.
func (h *Histogram[C]) AllValues() *AllValuesIterator[C] {
	return &AllValuesIterator[C]{cursor: newCursor(h)}
}

// Next advances to the next slot, whether or not it holds any count. It
// returns false once every slot has been visited.
func (it *AllValuesIterator[C]) Next() bool {
	if it.cursor.exhausted() {
		return false
	}
	it.cursor.moveNext()
	value := it.cursor.h.g.highestEquivalentValue(it.cursor.currentValueAtIndex)
	it.value = it.cursor.snapshot(value, it.cursor.percentile())
	it.cursor.commitStep(value)
	it.cursor.incrementSubBucket()
	return true
}

// Value returns the IterationValue produced by the most recent Next call.
func (it *AllValuesIterator[C]) Value() IterationValue { return it.value }
