package sorting

// QuickSort pivots on the leftmost element of each range.
func QuickSort(arr []int) {
	quickSort(arr, 0, len(arr)-1)
}

// QuickSortOptimized pivots on the median of the first, middle and last elements.
func QuickSortOptimized(arr []int) {
	quickSortOptimized(arr, 0, len(arr)-1)
}

func quickSort(arr []int, left, right int) {
	if left >= right {
		return
	}
	p := partition(arr, left, right)
	quickSort(arr, left, p-1)
	quickSort(arr, p+1, right)
}

func quickSortOptimized(arr []int, left, right int) {
	if left >= right {
		return
	}
	medianOfThree(arr, left, right)
	mid := left + (right-left)/2
	arr[left], arr[mid] = arr[mid], arr[left] // Partition expects the pivot at left
	p := partition(arr, left, right)
	quickSortOptimized(arr, left, p-1)
	quickSortOptimized(arr, p+1, right)
}

// partition pivots on arr[left]. Elements of arr[left+1..right] smaller than
// the pivot are gathered right after it, then the pivot is swapped to the end
// of that region. Returns the pivot's final index.
func partition(arr []int, left, right int) int {
	pivot := arr[left]
	i := left + 1
	for j := i; j <= right; j++ {
		if arr[j] < pivot {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	arr[left], arr[i-1] = arr[i-1], arr[left]
	return i - 1
}

// medianOfThree puts arr[left], arr[mid] and arr[right] in ascending order and
// returns the middle value, now at mid.
func medianOfThree(arr []int, left, right int) int {
	mid := left + (right-left)/2
	if arr[left] > arr[mid] {
		arr[left], arr[mid] = arr[mid], arr[left]
	}
	if arr[left] > arr[right] {
		arr[left], arr[right] = arr[right], arr[left]
	}
	if arr[mid] > arr[right] {
		arr[mid], arr[right] = arr[right], arr[mid]
	}
	return arr[mid]
}
