package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/cihub/seelog"

	"sort_compare_go/array_gen"
	"sort_compare_go/comparison"
	"sort_compare_go/logging"
)

// Runs the full comparison. No arguments are recognized; every parameter
// lives in the config package.
func main() {
	if err := logging.Setup("info"); err != nil {
		fmt.Fprintln(os.Stderr, "Error configuring logger:", err)
		os.Exit(1)
	}
	defer log.Flush()

	rng := array_gen.NewSource(time.Now().UnixNano()) // Seeded once per process

	if err := comparison.Run(rng, comparison.DefaultOptions()); err != nil {
		log.Criticalf("Comparison failed: %v", err)
		log.Flush()
		os.Exit(1)
	}
}
