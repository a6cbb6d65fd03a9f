package sorting

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/snapshot"
)

// Trace runs alg over a copy of values and returns every intermediate frame.
// values is never modified.
func Trace(alg Algorithm, values []int) (*snapshot.Trace, error) {
	run, ok := runners[alg]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", alg)
	}
	if len(values) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "%s sort", alg)
	}

	t := newTracer(values)
	t.snap(StatusStart)
	run(t)
	t.snap(StatusSorted)
	return t.rec.Trace(), nil
}

// tracer owns the working array of one run.
type tracer struct {
	a   []int
	rec *snapshot.Recorder
}

func newTracer(values []int) *tracer {
	a := make([]int, len(values))
	copy(a, values)
	return &tracer{a: a, rec: snapshot.NewRecorder(snapshot.KindArray)}
}

func (t *tracer) snap(status string, highlight ...int) {
	t.rec.Record(snapshot.NewArray(t.a, status, highlight...))
}

func (t *tracer) swap(i, j int) { t.a[i], t.a[j] = t.a[j], t.a[i] }

// span returns the indices lo..hi inclusive.
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
