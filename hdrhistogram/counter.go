package hdrhistogram

// Counter is the set of integer types a Histogram's counts array may be
// built from. Choosing uint32 halves memory versus uint64 at the cost of
// silently wrapping around 4.29 billion recordings of the same value;
// totalCount is always tracked at uint64 width regardless of C so the
// overall sample count does not share that risk.
type Counter interface {
	~uint32 | ~uint64
}
