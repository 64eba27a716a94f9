// Array generators for the sort comparison datasets.
// Every generator draws from a caller-owned *rand.Rand so runs can be
// reproduced under a fixed seed.
package array_gen

import (
	"math"
	"math/rand"
)

// Kind names a dataset generation strategy.
type Kind int

const (
	Random Kind = iota
	NearlySorted
	ReverseSorted
)

func (k Kind) String() string {
	switch k {
	case Random:
		return "random"
	case NearlySorted:
		return "nearly sorted"
	case ReverseSorted:
		return "reverse sorted"
	default:
		return "unknown"
	}
}

// NewSource returns a generator seeded with seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// FillRandom fills arr with values drawn uniformly from [0, len(arr)).
func FillRandom(rng *rand.Rand, arr []int) {
	n := len(arr)
	for i := range arr {
		arr[i] = rng.Intn(n)
	}
}

// FillNearlySorted writes the identity permutation into arr, then performs
// floor(rate * len(arr)) swaps between random index pairs. Swaps may hit the
// same index or undo each other, so rate bounds the displacement from above.
func FillNearlySorted(rng *rand.Rand, arr []int, rate float64) {
	n := len(arr)
	for i := range arr {
		arr[i] = i
	}
	if n == 0 {
		return
	}

	swaps := int(math.Floor(rate * float64(n)))
	for i := 0; i < swaps; i++ {
		a := rng.Intn(n)
		b := rng.Intn(n)
		arr[a], arr[b] = arr[b], arr[a]
	}
}

// FillReverseSorted writes len(arr)-1 down to 0 into arr.
func FillReverseSorted(arr []int) {
	n := len(arr)
	for i := range arr {
		arr[i] = n - i - 1
	}
}

// Generate allocates an array of n elements filled according to kind.
// rate only applies to NearlySorted.
func Generate(rng *rand.Rand, kind Kind, n int, rate float64) []int {
	arr := make([]int, n)
	switch kind {
	case Random:
		FillRandom(rng, arr)
	case NearlySorted:
		FillNearlySorted(rng, arr, rate)
	case ReverseSorted:
		FillReverseSorted(arr)
	}
	return arr
}
