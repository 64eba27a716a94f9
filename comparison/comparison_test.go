package comparison

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sort_compare_go/array_gen"
	"sort_compare_go/sorting"
)

func testOptions(out *bytes.Buffer) Options {
	return Options{
		Size:           200,
		RandomDatasets: 3,
		DeviationRate:  0.01,
		Out:            out,
	}
}

func TestNewDatasets(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(&buf)
	d := newDatasets(array_gen.NewSource(1), opts)

	require.Len(t, d.random, 3)
	for _, arr := range d.random {
		assert.Len(t, arr, 200)
	}
	assert.Len(t, d.nearlySorted, 200)
	assert.Equal(t, 199, d.reverseSorted[0])
	assert.Equal(t, 0, d.reverseSorted[199])
}

func TestMeasureLeavesDatasetsIntact(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(&buf)
	d := newDatasets(array_gen.NewSource(2), opts)

	original := append([]int(nil), d.random[0]...)
	scratch := make([]int, opts.Size)

	algo := sorting.Algorithm{Name: "Quick Sort", Sort: sorting.QuickSort}
	res := measure(algo, d, scratch)

	assert.Equal(t, "Quick Sort", res.Algorithm)
	assert.Equal(t, original, d.random[0])
	assert.GreaterOrEqual(t, res.Random, 0.0)
	assert.GreaterOrEqual(t, res.NearlySorted, 0.0)
	assert.GreaterOrEqual(t, res.ReverseSorted, 0.0)

	// Scratch holds the last sorted copy
	for i := 1; i < len(scratch); i++ {
		require.LessOrEqual(t, scratch[i-1], scratch[i])
	}
}

func TestCompare(t *testing.T) {
	var buf bytes.Buffer
	results, err := Compare(array_gen.NewSource(3), testOptions(&buf))
	require.NoError(t, err)

	algos := sorting.Algorithms()
	require.Len(t, results, len(algos))

	out := buf.String()
	last := -1
	for i, algo := range algos {
		assert.Equal(t, algo.Name, results[i].Algorithm)

		// Blocks appear in catalog order
		idx := strings.Index(out, algo.Name+":\n")
		require.GreaterOrEqual(t, idx, 0, algo.Name)
		assert.Greater(t, idx, last, algo.Name)
		last = idx
	}
	assert.Equal(t, len(algos), strings.Count(out, "  Random arrays: "))
	assert.Equal(t, len(algos), strings.Count(out, "  Nearly sorted array(1% Deviation): "))
	assert.Equal(t, len(algos), strings.Count(out, "  Reverse sorted array: "))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestCompareWriteError(t *testing.T) {
	opts := Options{Size: 10, RandomDatasets: 1, DeviationRate: 0.01, Out: failingWriter{}}
	results, err := Compare(array_gen.NewSource(4), opts)
	assert.Error(t, err)
	assert.Empty(t, results)
}

func TestRunWritesChart(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(&buf)
	opts.ChartPath = filepath.Join(t.TempDir(), "comparison.svg")

	require.NoError(t, Run(array_gen.NewSource(5), opts))

	out := buf.String()
	assert.Contains(t, out, "[Benchmark] Running: sort comparison")
	assert.Contains(t, out, "Quick Sort Optimized:\n")

	data, err := os.ReadFile(opts.ChartPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 10000, opts.Size)
	assert.Equal(t, 10, opts.RandomDatasets)
	assert.Equal(t, 0.01, opts.DeviationRate)
	assert.Equal(t, os.Stdout, opts.Out)
}
