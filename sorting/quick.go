package sorting

import "fmt"

func quickSort(t *tracer) { t.quick(0, len(t.a)-1) }

func (t *tracer) quick(lo, hi int) {
	if lo >= hi {
		return
	}
	p := t.partition(lo, hi)
	t.quick(lo, p-1)
	t.quick(p+1, hi)
}

// partition is Lomuto's scheme: a[lo..i] holds the values below the pivot,
// and i is the partition boundary reported in each frame.
func (t *tracer) partition(lo, hi int) int {
	pivot := t.a[hi]
	t.snap(fmt.Sprintf("Partitioning [%d..%d] around pivot %d", lo, hi, pivot), hi)
	i := lo - 1
	for j := lo; j < hi; j++ {
		t.snap(fmt.Sprintf("Comparing %d with pivot %d", t.a[j], pivot), j, hi)
		if t.a[j] >= pivot {
			continue
		}
		i++
		if i == j {
			t.snap(fmt.Sprintf("%d stays left of the boundary at index %d", t.a[i], i), i)
			continue
		}
		t.swap(i, j)
		t.snap(fmt.Sprintf("Swapped %d and %d, boundary at index %d", t.a[i], t.a[j], i), i, j)
	}
	t.swap(i+1, hi)
	t.snap(fmt.Sprintf("Placed pivot %d at index %d", pivot, i+1), i+1)
	return i + 1
}
