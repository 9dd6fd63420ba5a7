// Command hdrstat is an example program demonstrating the hdrhistogram
// package: it records newline-delimited integer samples into a histogram
// and prints a percentile distribution report. It is not part of the
// library.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
