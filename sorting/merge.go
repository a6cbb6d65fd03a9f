package sorting

import "fmt"

func mergeSort(t *tracer) { t.mergeRange(0, len(t.a)-1) }

func (t *tracer) mergeRange(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	t.snap(fmt.Sprintf("Dividing [%d..%d] into [%d..%d] and [%d..%d]", lo, hi, lo, mid, mid+1, hi), span(lo, hi)...)
	t.mergeRange(lo, mid)
	t.mergeRange(mid+1, hi)
	t.merge(lo, mid, hi)
}

// merge combines the sorted runs a[lo..mid] and a[mid+1..hi]. While it runs,
// a[lo..k) holds the merged prefix and the unmerged tails of both runs follow
// it, left run first; ties take the left element, which keeps the sort stable.
func (t *tracer) merge(lo, mid, hi int) {
	left := append([]int(nil), t.a[lo:mid+1]...)
	right := append([]int(nil), t.a[mid+1:hi+1]...)
	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		li, ri := k, k+len(left)-i
		t.snap(fmt.Sprintf("Comparing %d and %d", left[i], right[j]), li, ri)
		if left[i] <= right[j] {
			t.a[k] = left[i]
			i++
		} else {
			t.a[k] = right[j]
			j++
		}
		k++
		n := copy(t.a[k:], left[i:])
		copy(t.a[k+n:], right[j:])
		t.snap(fmt.Sprintf("Placed %d at index %d", t.a[k-1], k-1), k-1)
	}
	t.snap(fmt.Sprintf("Merged [%d..%d] into %v", lo, hi, t.a[lo:hi+1]), span(lo, hi)...)
}
