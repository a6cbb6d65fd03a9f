package sorting

import "fmt"

func bubble(t *tracer) {
	n := len(t.a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			t.snap(fmt.Sprintf("Comparing %d and %d", t.a[j], t.a[j+1]), j, j+1)
			if t.a[j] > t.a[j+1] {
				t.swap(j, j+1)
				t.snap(fmt.Sprintf("Swapped %d and %d", t.a[j+1], t.a[j]), j, j+1)
			}
		}
	}
}

// insertion sinks each key into the sorted prefix one swap at a time, so the
// key is visible at every position it passes.
func insertion(t *tracer) {
	for i := 1; i < len(t.a); i++ {
		key := t.a[i]
		t.snap(fmt.Sprintf("Inserting %d into the sorted prefix", key), i)
		k := i
		for k > 0 {
			t.snap(fmt.Sprintf("Comparing %d with %d", t.a[k-1], key), k-1, k)
			if t.a[k-1] <= key {
				break
			}
			t.swap(k-1, k)
			t.snap(fmt.Sprintf("Shifted %d right", t.a[k]), k-1, k)
			k--
		}
		t.snap(fmt.Sprintf("Placed %d at index %d", key, k), k)
	}
}

func selection(t *tracer) {
	n := len(t.a)
	for i := 0; i < n-1; i++ {
		m := i
		t.snap(fmt.Sprintf("Looking for the minimum of indices %d..%d", i, n-1), i)
		for j := i + 1; j < n; j++ {
			t.snap(fmt.Sprintf("Comparing %d with current minimum %d", t.a[j], t.a[m]), m, j)
			if t.a[j] < t.a[m] {
				m = j
			}
		}
		if m == i {
			t.snap(fmt.Sprintf("%d is already in place", t.a[i]), i)
			continue
		}
		t.swap(i, m)
		t.snap(fmt.Sprintf("Swapped minimum %d into index %d", t.a[i], i), i, m)
	}
}
