package hdrhistogram

import (
	"math"
	"unsafe"
)

// Histogram is a lossy, fixed-memory data structure for recording the
// distribution of non-normally distributed data (like latency) with a
// configurable relative precision across its entire tracked range.
//
// A Histogram is not safe for concurrent use. All mutating methods
// (Record*, Reset, and auto-resize triggered from within Record*) assume a
// single writer; readers should take a snapshot (an iterator, or one of the
// summary-statistic methods) only when the writer is quiescent.
type Histogram[C Counter] struct {
	g          geometry
	autoResize bool

	counts          []C
	totalCount      uint64
	maxValue        int64
	minNonZeroValue int64
}

// New returns a Histogram capable of tracking values in
// [lowestDiscernibleValue, highestTrackableValue] with significantDigits
// decimal digits of relative precision (0..5). It returns an error instead
// of panicking so that a caller on a hot path can decide for itself whether
// a bad configuration is fatal.
func New[C Counter](lowestDiscernibleValue, highestTrackableValue int64, significantDigits int) (*Histogram[C], error) {
	g, err := newGeometry(lowestDiscernibleValue, highestTrackableValue, significantDigits)
	if err != nil {
		return nil, err
	}
	return &Histogram[C]{
		g:               g,
		counts:          make([]C, g.countsLength()),
		minNonZeroValue: math.MaxInt64,
	}, nil
}

// NewAutoResizing returns a Histogram that starts with a minimal range
// (lowestDiscernibleValue=1, highestTrackableValue=2) and grows its counts
// array on demand the first time a value beyond its current range is
// recorded.
func NewAutoResizing[C Counter](significantDigits int) (*Histogram[C], error) {
	h, err := New[C](1, 2, significantDigits)
	if err != nil {
		return nil, err
	}
	h.autoResize = true
	return h, nil
}

// NewDefault returns NewAutoResizing with 3 significant digits, the
// parameterless constructor's default per spec.
func NewDefault[C Counter]() (*Histogram[C], error) {
	return NewAutoResizing[C](3)
}

// New64 is New instantiated at the common uint64 counter width.
func New64(lowestDiscernibleValue, highestTrackableValue int64, significantDigits int) (*Histogram[uint64], error) {
	return New[uint64](lowestDiscernibleValue, highestTrackableValue, significantDigits)
}

// New32 is New instantiated at the uint32 counter width, halving memory at
// the cost of wrapping around after ~4.29 billion recordings of the same
// value.
func New32(lowestDiscernibleValue, highestTrackableValue int64, significantDigits int) (*Histogram[uint32], error) {
	return New[uint32](lowestDiscernibleValue, highestTrackableValue, significantDigits)
}

// NewAutoResizing64 is NewAutoResizing instantiated at uint64 counters.
func NewAutoResizing64(significantDigits int) (*Histogram[uint64], error) {
	return NewAutoResizing[uint64](significantDigits)
}

// NewDefault64 is NewDefault instantiated at uint64 counters.
func NewDefault64() (*Histogram[uint64], error) {
	return NewDefault[uint64]()
}

// AutoResize reports whether recording a value beyond HighestTrackableValue
// grows the counts array instead of being rejected.
func (h *Histogram[C]) AutoResize() bool { return h.autoResize }

// SetAutoResize turns auto-resize on or off after construction.
func (h *Histogram[C]) SetAutoResize(enabled bool) { h.autoResize = enabled }

// LowestDiscernibleValue returns the histogram's configured L.
func (h *Histogram[C]) LowestDiscernibleValue() int64 { return h.g.lowestDiscernibleValue }

// HighestTrackableValue returns the histogram's current H, which may have
// grown past its constructed value under auto-resize.
func (h *Histogram[C]) HighestTrackableValue() int64 { return h.g.highestTrackableValue }

// SignificantDigits returns the histogram's configured relative precision
// exponent D.
func (h *Histogram[C]) SignificantDigits() int { return h.g.significantDigits }

// BucketCount returns the current number of logarithmic buckets.
func (h *Histogram[C]) BucketCount() int32 { return h.g.bucketCount }

// SubBucketCount returns the number of linear slots per bucket.
func (h *Histogram[C]) SubBucketCount() int32 { return h.g.subBucketCount }

// TotalCount returns the sum of every counter, tracked at full width
// regardless of the counter type C.
func (h *Histogram[C]) TotalCount() uint64 { return h.totalCount }

// Record records one occurrence of v. It returns false (with
// ErrValueOutOfRange) if v exceeds HighestTrackableValue and auto-resize is
// disabled.
func (h *Histogram[C]) Record(v int64) (bool, error) {
	return h.RecordValues(v, 1)
}

// RecordValues records n occurrences of v.
func (h *Histogram[C]) RecordValues(v, n int64) (bool, error) {
	idx, err := h.indexForRecording(v)
	if err != nil {
		if !h.autoResize {
			return false, err
		}
		h.growToCover(v)
		idx, err = h.indexForRecording(v)
		if err != nil {
			return false, err
		}
	}

	h.counts[idx] += C(n)
	h.totalCount += uint64(n)
	if v > h.maxValue {
		h.maxValue = v
	}
	if v > 0 && v < h.minNonZeroValue {
		h.minNonZeroValue = v
	}
	return true, nil
}

// RecordCorrectedValue records v, then backfills the synthetic samples a
// stalled load generator firing at expectedInterval would have produced
// during the stall. It is a no-op beyond the initial record when
// expectedInterval <= 0 or v <= expectedInterval.
func (h *Histogram[C]) RecordCorrectedValue(v, expectedInterval int64) (bool, error) {
	return h.RecordCorrectedValues(v, 1, expectedInterval)
}

// RecordCorrectedValues is RecordCorrectedValue with an explicit repeat
// count n for both the real sample and each backfilled one.
func (h *Histogram[C]) RecordCorrectedValues(v, n, expectedInterval int64) (bool, error) {
	ok, err := h.RecordValues(v, n)
	if !ok {
		return false, err
	}
	if expectedInterval <= 0 || v <= expectedInterval {
		return true, nil
	}

	missingValue := v - expectedInterval
	for missingValue >= expectedInterval {
		ok, err := h.RecordValues(missingValue, n)
		if !ok {
			return false, err
		}
		missingValue -= expectedInterval
	}
	return true, nil
}

// Reset zeroes every counter and restores totalCount/Max/MinNonZero to
// their empty-histogram values. It does not shrink a counts array that
// auto-resize has grown.
func (h *Histogram[C]) Reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.totalCount = 0
	h.maxValue = 0
	h.minNonZeroValue = math.MaxInt64
}

// indexForRecording returns the counts-array slot for v, or
// ErrValueOutOfRange if v doesn't fit in the current geometry.
func (h *Histogram[C]) indexForRecording(v int64) (int32, error) {
	if v < 0 {
		return 0, ErrValueOutOfRange
	}
	idx := h.g.countsIndexForValue(v)
	if idx < 0 || int(idx) >= len(h.counts) {
		return 0, ErrValueOutOfRange
	}
	return idx, nil
}

// growToCover extends the counts array (never shrinking it) so that v fits,
// recomputing bucketCount and HighestTrackableValue from the unchanged
// unitMagnitude/subBucketCount. Equivalence arithmetic for any already
// in-range value is unaffected: it depends only on unitMagnitude and
// subBucketMask, neither of which auto-resize touches.
func (h *Histogram[C]) growToCover(v int64) {
	newBucketCount := bucketsNeededToCoverValue(v, h.g.subBucketCount, h.g.unitMagnitude)
	if newBucketCount <= h.g.bucketCount {
		newBucketCount = h.g.bucketCount + 1
	}
	newLen := (newBucketCount + 1) * h.g.subBucketHalfCount
	if int(newLen) > len(h.counts) {
		grown := make([]C, newLen)
		copy(grown, h.counts)
		h.counts = grown
	}
	h.g.bucketCount = newBucketCount
	h.g.highestTrackableValue = h.g.highestEquivalentValue(v)
}

// CountForValue returns the raw counter for v's equivalence class, or 0 if
// v is out of range.
func (h *Histogram[C]) CountForValue(v int64) uint64 {
	idx := h.g.countsIndexForValue(v)
	if idx < 0 || int(idx) >= len(h.counts) {
		return 0
	}
	return uint64(h.counts[idx])
}

// Count returns the sum of counters whose equivalence class falls within
// the inclusive [r.Low, r.High] value range.
func (h *Histogram[C]) Count(r ValueRange) uint64 {
	loIdx := h.g.countsIndexForValue(r.Low)
	if loIdx < 0 {
		loIdx = 0
	}
	hiIdx := h.g.countsIndexForValue(r.High)
	if int(hiIdx) >= len(h.counts) {
		hiIdx = int32(len(h.counts) - 1)
	}
	if loIdx > hiIdx {
		return 0
	}

	var sum uint64
	for i := loIdx; i <= hiIdx; i++ {
		sum += uint64(h.counts[i])
	}
	return sum
}

// Max returns the highest equivalent value of the largest value recorded,
// or 0 if the histogram is empty.
func (h *Histogram[C]) Max() int64 {
	if h.maxValue == 0 {
		return 0
	}
	return h.g.highestEquivalentValue(h.maxValue)
}

// Min returns 0 whenever the zero-valued equivalence class has any counts
// (or the histogram is empty), and the smallest recorded non-zero value
// otherwise.
func (h *Histogram[C]) Min() int64 {
	if h.counts[0] > 0 || h.totalCount == 0 {
		return 0
	}
	return h.minNonZeroValue
}

// MinNonZero returns the lowest equivalent value of the smallest non-zero
// value ever recorded, or math.MaxInt64 (the internal sentinel) if no
// non-zero value has ever been recorded.
func (h *Histogram[C]) MinNonZero() int64 {
	if h.minNonZeroValue == math.MaxInt64 {
		return math.MaxInt64
	}
	return h.g.lowestEquivalentValue(h.minNonZeroValue)
}

// Mean returns the approximate arithmetic mean of recorded values, 0 if
// empty.
func (h *Histogram[C]) Mean() float64 {
	if h.totalCount == 0 {
		return 0
	}
	var total float64
	it := h.RecordedValues()
	for it.Next() {
		iv := it.Value()
		total += float64(iv.CountAddedInThisStep) * float64(h.g.medianEquivalentValue(iv.Value))
	}
	return total / float64(h.totalCount)
}

// StdDeviation returns the approximate standard deviation of recorded
// values, 0 if empty.
func (h *Histogram[C]) StdDeviation() float64 {
	if h.totalCount == 0 {
		return 0
	}
	mean := h.Mean()
	var geometricDevTotal float64
	it := h.RecordedValues()
	for it.Next() {
		iv := it.Value()
		dev := float64(h.g.medianEquivalentValue(iv.Value)) - mean
		geometricDevTotal += dev * dev * float64(iv.CountAddedInThisStep)
	}
	return math.Sqrt(geometricDevTotal / float64(h.totalCount))
}

// Median is a convenience for ValueAtPercentile(50).
func (h *Histogram[C]) Median() int64 {
	return h.ValueAtPercentile(50)
}

// EstimatedFootprintInBytes estimates the histogram's memory footprint: a
// fixed overhead for the scalar fields plus the counts array's backing
// store. It does not account for slice-header or allocator overhead, which
// are small, constant, and toolchain-specific.
func (h *Histogram[C]) EstimatedFootprintInBytes() int64 {
	var zero C
	return 512 + int64(len(h.counts))*int64(unsafe.Sizeof(zero))
}

// LowestEquivalentValue, HighestEquivalentValue, NextNonEquivalentValue,
// MedianEquivalentValue, SizeOfEquivalentValueRange, ValuesAreEquivalent and
// EquivalentRange expose the geometry's equivalence arithmetic (4.3)
// against this histogram's configuration.

func (h *Histogram[C]) LowestEquivalentValue(v int64) int64  { return h.g.lowestEquivalentValue(v) }
func (h *Histogram[C]) HighestEquivalentValue(v int64) int64 { return h.g.highestEquivalentValue(v) }
func (h *Histogram[C]) NextNonEquivalentValue(v int64) int64 { return h.g.nextNonEquivalentValue(v) }
func (h *Histogram[C]) MedianEquivalentValue(v int64) int64  { return h.g.medianEquivalentValue(v) }
func (h *Histogram[C]) SizeOfEquivalentValueRange(v int64) int64 {
	return h.g.sizeOfEquivalentRange(v)
}
func (h *Histogram[C]) ValuesAreEquivalent(a, b int64) bool { return h.g.valuesAreEquivalent(a, b) }
func (h *Histogram[C]) EquivalentRange(v int64) ValueRange  { return h.g.equivalentRange(v) }

// Equal reports whether h and other have identical (L, D, totalCount, Max,
// MinNonZero) and equal counts at every value with a nonzero count in
// either. Histograms may differ in their counts array length (e.g. one grew
// via auto-resize and the other was pre-sized) and still compare equal.
func (h *Histogram[C]) Equal(other *Histogram[C]) bool {
	if h.g.lowestDiscernibleValue != other.g.lowestDiscernibleValue {
		return false
	}
	if h.g.significantDigits != other.g.significantDigits {
		return false
	}
	if h.totalCount != other.totalCount {
		return false
	}
	if h.Max() != other.Max() {
		return false
	}
	if h.MinNonZero() != other.MinNonZero() {
		return false
	}

	a := h.recordedCounts()
	b := other.recordedCounts()
	if len(a) != len(b) {
		return false
	}
	for v, c := range a {
		if b[v] != c {
			return false
		}
	}
	return true
}

func (h *Histogram[C]) recordedCounts() map[int64]uint64 {
	out := make(map[int64]uint64)
	it := h.RecordedValues()
	for it.Next() {
		iv := it.Value()
		out[iv.Value] += uint64(iv.CountAddedInThisStep)
	}
	return out
}
