// Package reportformat renders a histogram's percentile distribution as a
// column-aligned text or CSV report, the shape callers pipe into a file or
// terminal for a one-shot look at a recorded distribution.
package reportformat

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/quantiled/hdrhistogram/hdrhistogram"
)

// Format selects the output rendering.
type Format int

const (
	// PlainText renders fixed-width, human-readable columns.
	PlainText Format = iota
	// CSV renders comma-separated fields suitable for spreadsheet import.
	CSV
)

// DefaultTicksPerHalfDistance is the tick density used when a caller doesn't
// have a specific reason to pick another.
const DefaultTicksPerHalfDistance = 5

// summary is the subset of Histogram queried for the report's footer.
type summary interface {
	Mean() float64
	StdDeviation() float64
	Max() int64
	TotalCount() uint64
	BucketCount() int32
	SubBucketCount() int32
	SignificantDigits() int
}

// WriteDistribution writes h's percentile distribution to w at the given
// scale (e.g. 1e-6 to report nanosecond-denominated values in
// milliseconds), using ticksPerHalfDistance steps between each halving of
// the distance to 100%. logger may be nil; when set, it receives one Debug
// entry per call giving the row count and format, useful when wiring this
// into a batch report job, and a Warn entry if a write fails.
func WriteDistribution[C hdrhistogram.Counter](w io.Writer, h *hdrhistogram.Histogram[C], scale float64, ticksPerHalfDistance int32, format Format, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	digits := h.SignificantDigits()
	rows := 0

	it := h.Percentiles(ticksPerHalfDistance)
	for it.Next() {
		iv := it.Value()
		value := float64(iv.Value) * scale
		fraction := iv.PercentileLevelIteratedTo / 100

		var err error
		switch format {
		case CSV:
			err = writeCSVRow(w, value, digits, fraction, iv.TotalCountToThisValue)
		default:
			err = writeTextRow(w, value, digits, fraction, iv.TotalCountToThisValue)
		}
		if err != nil {
			logger.Warn("reportformat: write row failed", zap.Error(err), zap.Int("row", rows))
			return fmt.Errorf("reportformat: write row %d: %w", rows, err)
		}
		rows++
	}

	if err := writeFooter(w, h, format); err != nil {
		logger.Warn("reportformat: write footer failed", zap.Error(err))
		return fmt.Errorf("reportformat: write footer: %w", err)
	}

	logger.Debug("reportformat: distribution written", zap.Int("rows", rows), zap.String("format", formatName(format)))
	return nil
}

func writeTextRow(w io.Writer, value float64, digits int, fraction float64, totalCount uint64) error {
	_, err := fmt.Fprintf(w, "%12.*f %14.12f %10d", digits, value, fraction, totalCount)
	if err != nil {
		return err
	}
	if fraction >= 1 {
		_, err = fmt.Fprintln(w)
		return err
	}
	_, err = fmt.Fprintf(w, " %.2f\n", 1/(1-fraction))
	return err
}

func writeCSVRow(w io.Writer, value float64, digits int, fraction float64, totalCount uint64) error {
	inverse := "Infinity"
	if fraction < 1 {
		inverse = fmt.Sprintf("%.2f", 1/(1-fraction))
	}
	_, err := fmt.Fprintf(w, "%.*f,%.12f,%d,%s\n", digits, value, fraction, totalCount, inverse)
	return err
}

func writeFooter(w io.Writer, h summary, format Format) error {
	sep := " "
	if format == CSV {
		sep = ","
	}
	_, err := fmt.Fprintf(w, "#[Mean%s%.3f%sStdDeviation%s%.3f]\n", sep, h.Mean(), sep, sep, h.StdDeviation())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "#[Max%s%d%sTotalCount%s%d]\n", sep, h.Max(), sep, sep, h.TotalCount())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "#[Buckets%s%d%sSubBuckets%s%d]\n", sep, h.BucketCount(), sep, sep, h.SubBucketCount())
	return err
}

func formatName(f Format) string {
	if f == CSV {
		return "csv"
	}
	return "text"
}
