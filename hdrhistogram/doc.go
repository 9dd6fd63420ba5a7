// Package hdrhistogram provides a fixed-memory implementation of Gil Tene's
// High Dynamic Range Histogram. It records samples drawn from a wide integer
// domain while guaranteeing a configurable relative error bound across the
// entire tracked range, at a fixed, small memory cost and a recording cost
// of a handful of nanoseconds.
//
// A Histogram is not safe for concurrent use: it is meant to be owned by a
// single writer, with readers taking their own snapshots (an iterator, or a
// call to one of the summary statistics) at points where the writer is
// quiescent.
package hdrhistogram
