// benchmark.go
// Timing harness for the sort comparison.
// Time measures a single sort call; Run wraps a whole session with a
// snapshot of the host it ran on and its resource usage.

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Time runs sortFunc once on arr and returns the elapsed wall-clock seconds.
// Only the call itself is inside the measured interval.
func Time(sortFunc func([]int), arr []int) float64 {
	start := time.Now()
	sortFunc(arr)
	return time.Since(start).Seconds()
}

// Run wraps f to measure its runtime and memory usage.
// Additionally reports on host and OS information for repeatability.
func Run(label string, out io.Writer, f func()) {
	fmt.Fprintf(out, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(out, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	host, err := os.Hostname()
	if err == nil {
		fmt.Fprintln(out, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(out, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(out, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(out, "[Benchmark] ----------------------------------------")

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	numCPU := runtime.NumCPU()
	startGoroutines := runtime.NumGoroutine()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	// Report resource usage
	fmt.Fprintln(out, "[Benchmark] ----------------------------------------")
	fmt.Fprintf(out, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(out, "[Benchmark] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0) // Includes every merge buffer
	fmt.Fprintf(out, "[Benchmark] Peak Heap: %.2f MB\n", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	fmt.Fprintf(out, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Fprintf(out, "[Benchmark] CPU Cores: %d\n", numCPU)
	fmt.Fprintf(out, "[Benchmark] Goroutines Started: %d → %d\n", startGoroutines, endGoroutines)
}
