package hdrhistogram

import "errors"

// Construction-time precondition failures. These abort New/NewAutoResizing
// before any counts array is allocated.
var (
	ErrLowestDiscernibleValueTooSmall = errors.New("hdrhistogram: lowestDiscernibleValue must be >= 1")
	ErrHighestTrackableValueTooSmall  = errors.New("hdrhistogram: highestTrackableValue must be >= 2 * lowestDiscernibleValue")
	ErrSignificantDigitsOutOfRange    = errors.New("hdrhistogram: significantDigits must be in [0, 5]")
	ErrGeometryOverflow               = errors.New("hdrhistogram: unitMagnitude + subBucketHalfCountMagnitude exceeds 61")
)

// ErrValueOutOfRange is returned by the record family when a value exceeds
// the histogram's current highestTrackableValue and auto-resize is disabled
// or cannot grow any further.
var ErrValueOutOfRange = errors.New("hdrhistogram: value is too large to be recorded")
