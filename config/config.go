package config // Benchmark parameters, fixed at build time

const (
	ArraySize                 = 10000 // Elements per generated array
	RandomDatasets            = 10    // Independent random arrays averaged per algorithm
	NearlySortedDeviationRate = 0.01  // Swaps performed = rate * ArraySize

	// Grouped bar chart of the run, written next to the binary. Empty disables it.
	ChartFile = "sort_comparison.svg"
)
