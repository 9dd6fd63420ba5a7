package hdrhistogram

// IterationValue is one step emitted by any of the five iterators. It
// mirrors the histogram's state at the point the iterator decided the
// current step was complete, not the state of a single counts-array slot:
// CountAddedInThisStep can span several slots for the linear/logarithmic/
// percentile iterators, which bucket multiple raw indices into one reported
// step.
type IterationValue struct {
	// Value is the step's representative value (the meaning depends on the
	// iterator: highest-equivalent for percentile/recorded/all-values,
	// the reporting-level boundary for linear/logarithmic).
	Value int64
	// PrevValue is the Value of the previously emitted step, or 0 for the
	// first.
	PrevValue int64
	// Count is the raw counter at the counts-array slot the cursor had
	// most recently read when this step was emitted.
	Count uint64
	// Percentile is 100 * TotalCountToThisValue / total recorded count, as
	// of this step.
	Percentile float64
	// PercentileLevelIteratedTo is the percentile target the percentile
	// iterator was walking toward when it emitted this step; for the other
	// iterators it equals Percentile.
	PercentileLevelIteratedTo float64
	// CountAddedInThisStep is the number of recorded samples whose
	// equivalence class falls between the previous step's Value
	// (exclusive) and this step's Value (inclusive).
	CountAddedInThisStep uint64
	// TotalCountToThisValue is the cumulative recorded count up to and
	// including this step.
	TotalCountToThisValue uint64
	// TotalValueToThisValue is the cumulative sum of (count * highest
	// equivalent value) over every slot visited up to and including this
	// step; used internally by callers wanting a running weighted total.
	TotalValueToThisValue uint64
}

// cursor is the traversal state shared by all five iterator
// specializations. It walks the counts array one flat index at a time,
// accumulating cumulative counts and values; each specialization decides
// when a walked-over span of indices constitutes one emitted step.
type cursor[C Counter] struct {
	h *Histogram[C]

	currentIndex        int32
	currentValueAtIndex int64
	nextValueAtIndex    int64

	prevValueIteratedTo   int64
	totalCountToPrevIndex uint64

	totalCountToCurrentIndex uint64
	totalValueToCurrentIndex uint64
	countAtThisValue         uint64

	freshSubBucket bool
	arrayTotalCount uint64
}

func newCursor[C Counter](h *Histogram[C]) cursor[C] {
	return cursor[C]{
		h:                   h,
		currentIndex:        0,
		currentValueAtIndex: 0,
		nextValueAtIndex:    int64(1) << uint(h.g.unitMagnitude),
		freshSubBucket:      true,
		arrayTotalCount:     h.totalCount,
	}
}

// exhausted reports whether the cursor has walked past the end of the
// counts array.
func (c *cursor[C]) exhausted() bool {
	return int(c.currentIndex) >= len(c.h.counts)
}

// hasMoreData reports whether the cumulative count walked so far is still
// short of the snapshot total, i.e. whether any unvisited slot can still
// hold a nonzero counter.
func (c *cursor[C]) hasMoreData() bool {
	return c.totalCountToCurrentIndex < c.arrayTotalCount
}

// isLastIndex reports whether the cursor is positioned at the final slot
// of the counts array.
func (c *cursor[C]) isLastIndex() bool {
	return int(c.currentIndex) == len(c.h.counts)-1
}

// moveNext accumulates the counter at the current index into the running
// totals, the first time this index is visited since the last advance. It
// is safe to call repeatedly against the same index (a specialization may
// re-check reachedIterationLevel several times before the cursor actually
// advances) and safe to call once the cursor is exhausted (a no-op).
func (c *cursor[C]) moveNext() {
	if c.exhausted() || !c.freshSubBucket {
		return
	}
	n := uint64(c.h.counts[c.currentIndex])
	c.countAtThisValue = n
	c.totalCountToCurrentIndex += n
	c.totalValueToCurrentIndex += n * uint64(c.h.g.highestEquivalentValue(c.currentValueAtIndex))
	c.freshSubBucket = false
}

// incrementSubBucket advances to the next flat counts index.
func (c *cursor[C]) incrementSubBucket() {
	c.currentIndex++
	c.currentValueAtIndex = c.nextValueAtIndex
	if int(c.currentIndex+1) <= len(c.h.counts) {
		c.nextValueAtIndex = c.h.g.valueFromIndex(c.currentIndex + 1)
	}
	c.freshSubBucket = true
}

// percentile returns the cumulative percentile reached as of the current
// index, 0 if the histogram is empty.
func (c *cursor[C]) percentile() float64 {
	if c.arrayTotalCount == 0 {
		return 0
	}
	return 100.0 * float64(c.totalCountToCurrentIndex) / float64(c.arrayTotalCount)
}

// countAddedInThisStep is the cumulative count delta since the last
// emitted step.
func (c *cursor[C]) countAddedInThisStep() uint64 {
	return c.totalCountToCurrentIndex - c.totalCountToPrevIndex
}

// commitStep records that a step was just emitted ending at value,
// resetting the baseline used by countAddedInThisStep for the next step.
func (c *cursor[C]) commitStep(value int64) {
	c.prevValueIteratedTo = value
	c.totalCountToPrevIndex = c.totalCountToCurrentIndex
}

// snapshot builds the IterationValue for a step ending at value, with the
// given percentileLevelIteratedTo (equal to the cursor's own percentile for
// every iterator but the percentile iterator, which tracks its own target).
func (c *cursor[C]) snapshot(value int64, percentileLevelIteratedTo float64) IterationValue {
	return IterationValue{
		Value:                     value,
		PrevValue:                 c.prevValueIteratedTo,
		Count:                     c.countAtThisValue,
		Percentile:                c.percentile(),
		PercentileLevelIteratedTo: percentileLevelIteratedTo,
		CountAddedInThisStep:      c.countAddedInThisStep(),
		TotalCountToThisValue:     c.totalCountToCurrentIndex,
		TotalValueToThisValue:     c.totalValueToCurrentIndex,
	}
}
