package sorting

import (
	"os"

	log "github.com/cihub/seelog"
)

// exit is swapped out by tests to observe the fatal path.
var exit = os.Exit

// MergeSort allocates a buffer per half on every merge.
func MergeSort(arr []int) {
	mergeSort(arr, 0, len(arr)-1)
}

// MergeSortOptimized allocates a single buffer covering the merged range on every merge.
func MergeSortOptimized(arr []int) {
	mergeSortOptimized(arr, 0, len(arr)-1)
}

func mergeSort(arr []int, l, r int) {
	if l < r {
		m := l + (r-l)/2
		mergeSort(arr, l, m)
		mergeSort(arr, m+1, r)
		merge(arr, l, m, r)
	}
}

func mergeSortOptimized(arr []int, l, r int) {
	if l < r {
		m := l + (r-l)/2
		mergeSortOptimized(arr, l, m)
		mergeSortOptimized(arr, m+1, r)
		mergeOptimized(arr, l, m, r)
	}
}

// merge combines the sorted runs arr[l..m] and arr[m+1..r].
// On ties the left run wins, keeping the merge stable.
func merge(arr []int, l, m, r int) {
	left := make([]int, m-l+1)
	right := make([]int, r-m)
	copy(left, arr[l:m+1])
	copy(right, arr[m+1:r+1])

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			arr[k] = left[i]
			i++
		} else {
			arr[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		arr[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		arr[k] = right[j]
		j++
		k++
	}
}

func mergeOptimized(arr []int, l, m, r int) {
	temp := allocBuffer(r - l + 1)

	i, j, k := l, m+1, 0
	for i <= m && j <= r {
		if arr[i] <= arr[j] {
			temp[k] = arr[i]
			i++
		} else {
			temp[k] = arr[j]
			j++
		}
		k++
	}
	for i <= m {
		temp[k] = arr[i]
		i++
		k++
	}
	for j <= r {
		temp[k] = arr[j]
		j++
		k++
	}

	copy(arr[l:r+1], temp)
}

// allocBuffer returns a zeroed buffer of n ints. There is no recovery from a
// failed allocation mid-sort: the process logs a critical diagnostic and exits.
// Heap exhaustion proper is already fatal in the runtime; this catches the
// recoverable makeslice panic.
func allocBuffer(n int) (buf []int) {
	defer func() {
		if err := recover(); err != nil {
			log.Criticalf("Memory allocation failed: %v", err)
			log.Flush()
			exit(1)
			buf = nil
		}
	}()
	return make([]int, n)
}
