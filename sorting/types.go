package sorting

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
)

// Algorithm names a sorting algorithm.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Insertion Algorithm = "insertion"
	Selection Algorithm = "selection"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
	Heap      Algorithm = "heap"
)

// Status lines of the opening and closing frames.
const (
	StatusStart  = "start"
	StatusSorted = "sorted"
)

var (
	// ErrEmptyInput indicates an empty value list.
	ErrEmptyInput = core.Invalid(errors.New("sorting: empty input"))
	// ErrUnknownAlgorithm indicates an algorithm name not in Algorithms().
	ErrUnknownAlgorithm = core.Invalid(errors.New("sorting: unknown algorithm"))
)

var runners = map[Algorithm]func(*tracer){
	Bubble:    bubble,
	Insertion: insertion,
	Selection: selection,
	Merge:     mergeSort,
	Quick:     quickSort,
	Heap:      heapSort,
}

// Algorithms lists the supported algorithms in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Insertion, Selection, Merge, Quick, Heap}
}

// ParseAlgorithm resolves a case-insensitive name such as "Bubble" or "quick".
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Algorithms(), a) {
		return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return a, nil
}
