package searching

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/snapshot"
)

// Trace searches values for target with alg.
func Trace(alg Algorithm, values []int, target int) (*snapshot.Trace, Result, error) {
	if len(values) == 0 {
		return nil, NotFound, errors.Wrapf(ErrEmptyInput, "%s search", alg)
	}
	rec := snapshot.NewRecorder(snapshot.KindArray)
	switch alg {
	case Linear:
		res := linear(rec, values, target)
		return rec.Trace(), res, nil
	case Binary:
		res := binary(rec, values, target)
		return rec.Trace(), res, nil
	default:
		return nil, NotFound, errors.Wrapf(ErrUnknownAlgorithm, "%q", alg)
	}
}

func linear(rec *snapshot.Recorder, a []int, target int) Result {
	rec.Record(snapshot.NewArray(a, fmt.Sprintf("Searching for %d", target)))
	for i, v := range a {
		if v == target {
			rec.Record(snapshot.NewArray(a, fmt.Sprintf("Checking index %d: %d equals %d", i, v, target), i))
			rec.Record(snapshot.NewArray(a, fmt.Sprintf("Found %d at index %d", target, i), i))
			return Result{Index: i, Found: true}
		}
		rec.Record(snapshot.NewArray(a, fmt.Sprintf("Checking index %d: %d is not %d", i, v, target), i))
	}
	rec.Record(snapshot.NewArray(a, fmt.Sprintf("%d not found", target)))
	return NotFound
}

// binary highlights low, mid and high in each window frame.
func binary(rec *snapshot.Recorder, values []int, target int) Result {
	a := values
	res := NotFound
	if slices.IsSorted(values) {
		rec.Record(snapshot.NewArray(a, fmt.Sprintf("Searching for %d", target)))
	} else {
		a = slices.Clone(values)
		slices.Sort(a)
		res.Sorted = true
		rec.Record(snapshot.NewArray(a, fmt.Sprintf("Input was not sorted; searching a sorted copy for %d", target)))
	}

	low, high := 0, len(a)-1
	for low <= high {
		mid := low + (high-low)/2
		window := fmt.Sprintf("Window [%d..%d], middle index %d holds %d", low, high, mid, a[mid])
		switch {
		case a[mid] == target:
			rec.Record(snapshot.NewArray(a, window+": match", low, mid, high))
			rec.Record(snapshot.NewArray(a, fmt.Sprintf("Found %d at index %d", target, mid), mid))
			res.Index, res.Found = mid, true
			return res
		case a[mid] < target:
			rec.Record(snapshot.NewArray(a, fmt.Sprintf("%s < %d, searching the right half", window, target), low, mid, high))
			low = mid + 1
		default:
			rec.Record(snapshot.NewArray(a, fmt.Sprintf("%s > %d, searching the left half", window, target), low, mid, high))
			high = mid - 1
		}
	}
	rec.Record(snapshot.NewArray(a, fmt.Sprintf("%d not found", target)))
	return res
}
