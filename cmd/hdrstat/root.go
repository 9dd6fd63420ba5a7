package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantiled/hdrhistogram/hdrhistogram"
	"github.com/quantiled/hdrhistogram/reportformat"
)

var (
	flagLowest   int64
	flagHighest  int64
	flagDigits   int
	flagTicks    int32
	flagScale    float64
	flagFormat   string
	flagInterval int64
	flagInput    string
	flagVerbose  bool
)

// rootCmd reads newline-delimited integer samples (from a file or stdin)
// into a histogram and prints its percentile distribution. With
// --expected-interval set, every sample is recorded through
// RecordCorrectedValue to backfill the stalls a coordinated-omission-prone
// load generator would have hidden.
var rootCmd = &cobra.Command{
	Use:   "hdrstat",
	Short: "record samples into an HDR histogram and print a percentile distribution",
	RunE:  runRoot,
}

func init() {
	flags := rootCmd.Flags()
	flags.Int64Var(&flagLowest, "lowest", 1, "lowest discernible value")
	flags.Int64Var(&flagHighest, "highest", 3600000000, "highest trackable value")
	flags.IntVar(&flagDigits, "digits", 3, "significant decimal digits (0-5)")
	flags.Int32Var(&flagTicks, "ticks", reportformat.DefaultTicksPerHalfDistance, "percentile ticks per half-distance")
	flags.Float64Var(&flagScale, "scale", 1, "multiply reported values by this factor")
	flags.StringVar(&flagFormat, "format", "text", "output format: text or csv")
	flags.Int64Var(&flagInterval, "expected-interval", 0, "expected interval for coordinated-omission correction (0 disables it)")
	flags.StringVar(&flagInput, "input", "-", "input file of newline-delimited samples, or - for stdin")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("hdrstat: build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	h, err := hdrhistogram.New64(flagLowest, flagHighest, flagDigits)
	if err != nil {
		return fmt.Errorf("hdrstat: construct histogram: %w", err)
	}

	in, closeIn, err := openInput(flagInput)
	if err != nil {
		return err
	}
	defer closeIn()

	n, err := recordSamples(h, in, flagInterval, logger)
	if err != nil {
		return err
	}
	logger.Info("hdrstat: samples recorded", zap.Uint64("count", n))

	format := reportformat.PlainText
	if strings.EqualFold(flagFormat, "csv") {
		format = reportformat.CSV
	}

	return reportformat.WriteDistribution(os.Stdout, h, flagScale, flagTicks, format, logger)
}

func openInput(path string) (*bufio.Scanner, func(), error) {
	if path == "-" || path == "" {
		return bufio.NewScanner(os.Stdin), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("hdrstat: open input %q: %w", path, err)
	}
	return bufio.NewScanner(f), func() { _ = f.Close() }, nil
}

func recordSamples(h *hdrhistogram.Histogram[uint64], in *bufio.Scanner, expectedInterval int64, logger *zap.Logger) (uint64, error) {
	var recorded uint64
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			logger.Warn("hdrstat: skipping unparseable sample", zap.String("line", line), zap.Error(err))
			continue
		}

		var ok bool
		if expectedInterval > 0 {
			ok, err = h.RecordCorrectedValue(v, expectedInterval)
		} else {
			ok, err = h.Record(v)
		}
		if err != nil {
			return recorded, fmt.Errorf("hdrstat: record %d: %w", v, err)
		}
		if ok {
			recorded++
		}
	}
	if err := in.Err(); err != nil {
		return recorded, fmt.Errorf("hdrstat: read input: %w", err)
	}
	return recorded, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
