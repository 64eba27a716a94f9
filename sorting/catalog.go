package sorting

// Algorithm pairs a display name with an in-place sort.
type Algorithm struct {
	Name string
	Sort func(arr []int)
}

// Algorithms returns every benchmarked sort in report order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{"Bubble Sort", BubbleSort},
		{"Bubble Sort Optimized", BubbleSortOptimized},
		{"Selection Sort", SelectionSort},
		{"Insertion Sort", InsertionSort},
		{"Merge Sort", MergeSort},
		{"Merge Sort (Memory) Optimized", MergeSortOptimized},
		{"Quick Sort", QuickSort},
		{"Quick Sort Optimized", QuickSortOptimized},
	}
}
