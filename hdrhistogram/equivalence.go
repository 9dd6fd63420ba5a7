package hdrhistogram

// ValueRange is an inclusive [Low, High] interval, used for equivalent-range
// queries and count-within-range queries.
type ValueRange struct {
	Low  int64
	High int64
}

// sizeOfEquivalentRange returns the width of the equivalence class that v
// belongs to: every value in that class maps to the same counts-array slot.
func (g geometry) sizeOfEquivalentRange(v int64) int64 {
	b := g.bucketIndexForValue(v)
	s := g.subBucketIndexForValue(v, b)
	adjustedBucket := b
	if s >= g.subBucketCount {
		adjustedBucket++
	}
	return int64(1) << uint(g.unitMagnitude+int64(adjustedBucket))
}

// LowestEquivalentValue returns the smallest value that maps to the same
// counter as v.
func (g geometry) lowestEquivalentValue(v int64) int64 {
	b := g.bucketIndexForValue(v)
	s := g.subBucketIndexForValue(v, b)
	return g.valueFromBucketAndSubBucket(b, s)
}

// nextNonEquivalentValue returns the smallest value that is *not* in v's
// equivalence class.
func (g geometry) nextNonEquivalentValue(v int64) int64 {
	return g.lowestEquivalentValue(v) + g.sizeOfEquivalentRange(v)
}

// highestEquivalentValue returns the largest value that maps to the same
// counter as v.
func (g geometry) highestEquivalentValue(v int64) int64 {
	return g.nextNonEquivalentValue(v) - 1
}

// medianEquivalentValue returns the midpoint of v's equivalence class; used
// by Mean and StdDeviation so that every recorded value in a bucket
// contributes its class's center rather than its raw, possibly-rounded
// value.
func (g geometry) medianEquivalentValue(v int64) int64 {
	return g.lowestEquivalentValue(v) + (g.sizeOfEquivalentRange(v) >> 1)
}

// valuesAreEquivalent reports whether a and b map to the same counter.
func (g geometry) valuesAreEquivalent(a, b int64) bool {
	return g.lowestEquivalentValue(a) == g.lowestEquivalentValue(b)
}

// equivalentRange returns the inclusive [lowest, highest] interval of v's
// equivalence class.
func (g geometry) equivalentRange(v int64) ValueRange {
	return ValueRange{Low: g.lowestEquivalentValue(v), High: g.highestEquivalentValue(v)}
}
