// Quadratic sorts. Each sorts arr ascending in place.
package sorting

// BubbleSort runs all n-1 passes regardless of input order.
func BubbleSort(arr []int) {
	bubblePasses(arr, false)
}

// BubbleSortOptimized stops after the first pass that performs no swaps.
func BubbleSortOptimized(arr []int) {
	bubblePasses(arr, true)
}

// bubblePasses returns the number of passes made over arr.
func bubblePasses(arr []int, earlyExit bool) int {
	n := len(arr)
	passes := 0
	for i := 0; i < n-1; i++ {
		passes++
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}
		if earlyExit && !swapped {
			break
		}
	}
	return passes
}

func SelectionSort(arr []int) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			if arr[j] < arr[minIndex] {
				minIndex = j
			}
		}
		if minIndex != i {
			arr[i], arr[minIndex] = arr[minIndex], arr[i]
		}
	}
}

func InsertionSort(arr []int) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > key { // Shift larger elements right
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}
