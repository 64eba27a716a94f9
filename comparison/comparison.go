// Comparison package drives the sort benchmark: it builds the datasets,
// times every algorithm against them and prints one report block each.
package comparison

import (
	"io"
	"math/rand"
	"os"

	log "github.com/cihub/seelog"

	"sort_compare_go/array_gen"
	"sort_compare_go/benchmark"
	"sort_compare_go/config"
	"sort_compare_go/report"
	"sort_compare_go/sorting"
)

// Options sizes a comparison run. main always runs with DefaultOptions.
type Options struct {
	Size           int     // Elements per array
	RandomDatasets int     // Random arrays averaged per algorithm
	DeviationRate  float64 // Swap rate of the nearly sorted array
	ChartPath      string  // SVG chart destination, empty to skip
	Out            io.Writer
}

func DefaultOptions() Options {
	return Options{
		Size:           config.ArraySize,
		RandomDatasets: config.RandomDatasets,
		DeviationRate:  config.NearlySortedDeviationRate,
		ChartPath:      config.ChartFile,
		Out:            os.Stdout,
	}
}

// datasets are generated once and shared read-only by every algorithm.
type datasets struct {
	random        [][]int
	nearlySorted  []int
	reverseSorted []int
}

func newDatasets(rng *rand.Rand, opts Options) datasets {
	d := datasets{random: make([][]int, opts.RandomDatasets)}
	for i := range d.random {
		d.random[i] = array_gen.Generate(rng, array_gen.Random, opts.Size, opts.DeviationRate)
	}
	d.nearlySorted = array_gen.Generate(rng, array_gen.NearlySorted, opts.Size, opts.DeviationRate)
	d.reverseSorted = array_gen.Generate(rng, array_gen.ReverseSorted, opts.Size, opts.DeviationRate)
	return d
}

// measure times algo on a fresh copy of every dataset. scratch is reused
// between runs; the copy happens outside the timed call.
func measure(algo sorting.Algorithm, d datasets, scratch []int) report.Result {
	times := make([]float64, len(d.random))
	for i, src := range d.random {
		copy(scratch, src)
		times[i] = benchmark.Time(algo.Sort, scratch)
	}

	res := report.Result{Algorithm: algo.Name, Random: report.Mean(times)}

	copy(scratch, d.nearlySorted)
	res.NearlySorted = benchmark.Time(algo.Sort, scratch)

	copy(scratch, d.reverseSorted)
	res.ReverseSorted = benchmark.Time(algo.Sort, scratch)

	return res
}

// Compare runs every algorithm in catalog order, printing each block as soon
// as it is measured, and returns the collected results.
func Compare(rng *rand.Rand, opts Options) ([]report.Result, error) {
	d := newDatasets(rng, opts)
	scratch := make([]int, opts.Size)

	algos := sorting.Algorithms()
	results := make([]report.Result, 0, len(algos))
	for _, algo := range algos {
		log.Debugf("Timing %s on %d-element arrays", algo.Name, opts.Size)
		res := measure(algo, d, scratch)
		if err := report.WriteBlock(opts.Out, res, opts.DeviationRate); err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Run executes a full comparison inside the environment snapshot and writes
// the chart afterwards. Chart failures are logged, not returned.
func Run(rng *rand.Rand, opts Options) error {
	var (
		results []report.Result
		err     error
	)
	benchmark.Run("sort comparison "+config.Main_version, opts.Out, func() {
		results, err = Compare(rng, opts)
	})
	if err != nil {
		return err
	}

	if opts.ChartPath != "" {
		if err := report.WriteChart(opts.ChartPath, results); err != nil {
			log.Error(err)
		} else {
			log.Infof("Wrote comparison chart to %s", opts.ChartPath)
		}
	}
	return nil
}
