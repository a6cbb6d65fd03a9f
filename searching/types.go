package searching

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
)

// Algorithm names a search algorithm.
type Algorithm string

const (
	Linear Algorithm = "linear"
	Binary Algorithm = "binary"
)

var (
	// ErrEmptyInput indicates an empty value list.
	ErrEmptyInput = core.Invalid(errors.New("searching: empty input"))
	// ErrUnknownAlgorithm indicates an algorithm other than Linear or Binary.
	ErrUnknownAlgorithm = core.Invalid(errors.New("searching: unknown algorithm"))
)

// Result is the outcome of one search.
type Result struct {
	// Index of the match, -1 when not found.
	Index int
	Found bool
	// Sorted is set when binary search had to search a sorted copy.
	Sorted bool
}

// NotFound is the Result of a miss.
var NotFound = Result{Index: -1}

// Algorithms lists the supported algorithms.
func Algorithms() []Algorithm { return []Algorithm{Linear, Binary} }

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Algorithms(), a) {
		return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return a, nil
}
