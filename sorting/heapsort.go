package sorting

import "fmt"

func heapSort(t *tracer) {
	n := len(t.a)
	t.snap("Building a max-heap")
	for i := n/2 - 1; i >= 0; i-- {
		t.siftDown(i, n)
	}
	t.snap(fmt.Sprintf("Max-heap built, maximum is %d", t.a[0]), 0)
	for end := n - 1; end > 0; end-- {
		t.snap(fmt.Sprintf("Moving maximum %d to index %d", t.a[0], end), 0, end)
		t.swap(0, end)
		t.snap(fmt.Sprintf("Swapped %d into its final place", t.a[end]), 0, end)
		t.siftDown(0, end)
	}
}

// siftDown restores the max-heap order of a[:size] below root.
func (t *tracer) siftDown(root, size int) {
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		if l < size && t.a[l] > t.a[largest] {
			largest = l
		}
		if r < size && t.a[r] > t.a[largest] {
			largest = r
		}
		if largest == root {
			return
		}
		t.snap(fmt.Sprintf("Comparing %d with larger child %d", t.a[root], t.a[largest]), root, largest)
		t.swap(root, largest)
		t.snap(fmt.Sprintf("Swapped %d and %d", t.a[root], t.a[largest]), root, largest)
		root = largest
	}
}
