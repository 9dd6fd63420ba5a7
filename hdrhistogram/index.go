package hdrhistogram

import "math/bits"

// bucketIndexForValue returns which of the B+1 logarithmic buckets v falls
// into. Any value that fits in the first subBucketCount slots lands in
// bucket 0, regardless of how small leadingZeroCountBase makes the formula
// look.
func (g geometry) bucketIndexForValue(v int64) int32 {
	clz := int32(bits.LeadingZeros64(uint64(v | g.subBucketMask)))
	return g.leadingZeroCountBase - clz
}

// subBucketIndexForValue returns the linear slot within bucket b that v
// maps to. It is always in [0, subBucketCount); for b > 0 it is always in
// [subBucketHalfCount, subBucketCount) because bucket b's lower half is
// subsumed by bucket b-1.
func (g geometry) subBucketIndexForValue(v int64, b int32) int32 {
	return int32(v >> uint(int64(b)+g.unitMagnitude))
}

// countsIndexFor maps (bucketIndex, subBucketIndex) to a flat slot in the
// counts array. The subtraction underflows harmlessly for b == 0: bucket 0
// is given the full subBucketCount range of slots, of which the lower half
// would otherwise go unused.
func (g geometry) countsIndexFor(b, s int32) int32 {
	bucketBaseIndex := (b + 1) << uint(g.subBucketHalfCountMagnitude)
	offsetInBucket := s - g.subBucketHalfCount
	return bucketBaseIndex + offsetInBucket
}

// countsIndexForValue composes bucketIndexForValue, subBucketIndexForValue
// and countsIndexFor: the single entry point recording and querying use to
// turn a raw value into a counts-array slot.
func (g geometry) countsIndexForValue(v int64) int32 {
	b := g.bucketIndexForValue(v)
	s := g.subBucketIndexForValue(v, b)
	return g.countsIndexFor(b, s)
}

// valueFromIndex is the inverse of countsIndexFor: it returns the smallest
// value that maps to counts-array slot i, i.e. lowestEquivalent of that
// slot's representative value.
func (g geometry) valueFromIndex(i int32) int64 {
	b := (i >> uint(g.subBucketHalfCountMagnitude)) - 1
	s := (i & (g.subBucketHalfCount - 1)) + g.subBucketHalfCount
	if b < 0 {
		s -= g.subBucketHalfCount
		b = 0
	}
	return g.valueFromBucketAndSubBucket(b, s)
}

// valueFromBucketAndSubBucket returns the representative (lowest
// equivalent) value of a given (bucketIndex, subBucketIndex) pair directly,
// without going through the flat index — used by valueFromIndex and by
// lowestEquivalentValue, which already have both indices in hand.
func (g geometry) valueFromBucketAndSubBucket(b, s int32) int64 {
	return int64(s) << uint(int64(b)+g.unitMagnitude)
}
