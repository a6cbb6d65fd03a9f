// Package sorting traces six classic sorts as sequences of ArraySnapshots.
//
// Every trace opens with the untouched input (status "start") and closes with
// the sorted values (status "sorted"). In between, each frame shows the array
// after one comparison, swap or placement, with the indices involved
// highlighted.
//
//	tr, err := sorting.Trace(sorting.Merge, []int{5, 3, 8, 1})
//
// Algorithm notes:
//
//   - Merge shows the array as merged-prefix, remaining-left-run,
//     remaining-right-run while a merge is in progress, so every frame is a
//     permutation of the input.
//   - Quick uses the Lomuto scheme with the last element as pivot.
//   - Heap shows the heap-build phase before the extraction phase.
package sorting
