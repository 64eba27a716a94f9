// Report package formats sort comparison timings: the per-algorithm text
// blocks printed to stdout and an SVG bar chart of the same figures.
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"
)

// Result holds the timings of one algorithm, in seconds.
type Result struct {
	Algorithm     string
	Random        float64 // Mean over every random dataset
	NearlySorted  float64
	ReverseSorted float64
}

// Mean returns the arithmetic mean of times, or 0 when there are none.
func Mean(times []float64) float64 {
	if len(times) == 0 {
		return 0
	}
	return stat.Mean(times, nil)
}

// WriteBlock prints the labeled timings of r. deviationRate is shown in the
// nearly sorted label as a percentage.
func WriteBlock(out io.Writer, r Result, deviationRate float64) error {
	_, err := fmt.Fprintf(out,
		"%s:\n"+
			"  Random arrays: %.4f seconds (%.1f ms)\n"+
			"  Nearly sorted array(%.0f%% Deviation): %.4f seconds (%.1f ms)\n"+
			"  Reverse sorted array: %.4f seconds (%.1f ms)\n",
		r.Algorithm,
		r.Random, r.Random*1000,
		deviationRate*100, r.NearlySorted, r.NearlySorted*1000,
		r.ReverseSorted, r.ReverseSorted*1000,
	)
	return err
}
