package hdrhistogram

import "math/bits"

// geometry is the pure, derivable configuration of a histogram: everything
// that follows from (lowestDiscernibleValue, highestTrackableValue,
// significantDigits) alone, with no counters attached. bucketCount and
// highestTrackableValue are the only fields that change after construction,
// and only when auto-resize grows the histogram.
type geometry struct {
	lowestDiscernibleValue int64
	highestTrackableValue  int64
	significantDigits      int

	unitMagnitude               int64
	subBucketHalfCountMagnitude int32
	subBucketCount              int32
	subBucketHalfCount          int32
	subBucketMask               int64
	bucketCount                 int32
	leadingZeroCountBase        int32
}

// maxSignificantDigits is the largest significantDigits the geometry
// accepts; precision beyond this is not representable in the two-level
// bucket layout without risking unitMagnitude+subBucketHalfCountMagnitude
// overflowing the 61-bit budget spec.md requires.
const maxSignificantDigits = 5

func newGeometry(lowestDiscernibleValue, highestTrackableValue int64, significantDigits int) (geometry, error) {
	if lowestDiscernibleValue < 1 {
		return geometry{}, ErrLowestDiscernibleValueTooSmall
	}
	if highestTrackableValue < 2*lowestDiscernibleValue {
		return geometry{}, ErrHighestTrackableValueTooSmall
	}
	if significantDigits < 0 || significantDigits > maxSignificantDigits {
		return geometry{}, ErrSignificantDigitsOutOfRange
	}

	largestValueWithSingleUnitResolution := int64(2) * pow10(int64(significantDigits))

	subBucketCountMagnitude := int32(ceilLog2(largestValueWithSingleUnitResolution))
	subBucketHalfCountMagnitude := subBucketCountMagnitude
	if subBucketHalfCountMagnitude < 1 {
		subBucketHalfCountMagnitude = 1
	}
	subBucketHalfCountMagnitude--

	unitMagnitude := int64(floorLog2(lowestDiscernibleValue))

	subBucketCount := int32(1) << uint(subBucketHalfCountMagnitude+1)
	subBucketHalfCount := subBucketCount / 2
	subBucketMask := int64(subBucketCount-1) << uint(unitMagnitude)

	leadingZeroCountBase := int32(64 - unitMagnitude - int64(subBucketHalfCountMagnitude+1))
	if unitMagnitude+int64(subBucketHalfCountMagnitude) > 61 {
		return geometry{}, ErrGeometryOverflow
	}

	bucketCount := bucketsNeededToCoverValue(highestTrackableValue, subBucketCount, unitMagnitude)

	return geometry{
		lowestDiscernibleValue:      lowestDiscernibleValue,
		highestTrackableValue:       highestTrackableValue,
		significantDigits:           significantDigits,
		unitMagnitude:               unitMagnitude,
		subBucketHalfCountMagnitude: subBucketHalfCountMagnitude,
		subBucketCount:              subBucketCount,
		subBucketHalfCount:          subBucketHalfCount,
		subBucketMask:               subBucketMask,
		bucketCount:                 bucketCount,
		leadingZeroCountBase:        leadingZeroCountBase,
	}, nil
}

// bucketsNeededToCoverValue computes the smallest bucket count B such that
// (subBucketCount << (B-1)) << unitMagnitude exceeds highestTrackableValue,
// saturating at the bucket count that reaches math.MaxInt64 rather than
// overflowing for pathologically large inputs.
func bucketsNeededToCoverValue(highestTrackableValue int64, subBucketCount int32, unitMagnitude int64) int32 {
	smallestUntrackable := int64(subBucketCount) << uint(unitMagnitude)
	bucketsNeeded := int32(1)
	for smallestUntrackable <= highestTrackableValue {
		if smallestUntrackable > (1<<62)-1 {
			// doubling again would overflow int64; one more bucket
			// covers everything up to math.MaxInt64.
			return bucketsNeeded + 1
		}
		smallestUntrackable <<= 1
		bucketsNeeded++
	}
	return bucketsNeeded
}

// countsLength returns the length of the flat counts array for a geometry
// with the given bucketCount: the lower half of every bucket after the
// first is subsumed by the bucket before it, so bucket 0 alone claims all
// subBucketCount slots and every other bucket claims subBucketHalfCount.
func (g geometry) countsLength() int32 {
	return (g.bucketCount + 1) * g.subBucketHalfCount
}

func floorLog2(v int64) int64 {
	if v <= 0 {
		return 0
	}
	return int64(63 - bits.LeadingZeros64(uint64(v)))
}

// ceilLog2 returns ceil(log2(v)) for v > 0, matching the teacher's
// float32-math.Log approach but computed exactly with bit arithmetic so it
// never suffers the float32 rounding the original Swift/Go math.Log path is
// exposed to at the edges of the subBucketCount magnitude table.
func ceilLog2(v int64) int64 {
	if v <= 1 {
		return 0
	}
	n := floorLog2(v)
	if int64(1)<<uint(n) < v {
		n++
	}
	return n
}

func pow10(exp int64) int64 {
	n := int64(1)
	for ; exp > 0; exp-- {
		n *= 10
	}
	return n
}
