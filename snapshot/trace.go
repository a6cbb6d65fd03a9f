package snapshot

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Trace is the ordered, non-empty, single-kind sequence of frames produced
// by one run of a tracer. It is never modified after construction.
type Trace struct {
	kind   Kind
	frames []Snapshot
}

// NewTrace validates frames and wraps them in a Trace.
func NewTrace(frames ...Snapshot) (*Trace, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyTrace
	}
	kind := frames[0].Kind()
	for i, f := range frames[1:] {
		if f.Kind() != kind {
			return nil, errors.Wrapf(ErrMixedKinds, "frame %d is %s, want %s", i+1, f.Kind(), kind)
		}
	}
	out := make([]Snapshot, len(frames))
	copy(out, frames)
	return &Trace{kind: kind, frames: out}, nil
}

// Kind returns the shape shared by every frame.
func (t *Trace) Kind() Kind { return t.kind }

// Len returns the number of frames.
func (t *Trace) Len() int { return len(t.frames) }

// At returns frame i.
func (t *Trace) At(i int) Snapshot { return t.frames[i] }

// First returns the opening frame.
func (t *Trace) First() Snapshot { return t.frames[0] }

// Last returns the closing frame.
func (t *Trace) Last() Snapshot { return t.frames[len(t.frames)-1] }

// Frames returns a copy of the frame list.
func (t *Trace) Frames() []Snapshot {
	out := make([]Snapshot, len(t.frames))
	copy(out, t.frames)
	return out
}

// Statuses returns the status line of every frame, in order.
func (t *Trace) Statuses() []string {
	out := make([]string, len(t.frames))
	for i, f := range t.frames {
		out[i] = f.Status()
	}
	return out
}

// Recorder accumulates the frames of one tracer run.
type Recorder struct {
	kind   Kind
	frames []Snapshot
}

// NewRecorder returns a Recorder that accepts frames of the given kind.
func NewRecorder(kind Kind) *Recorder {
	return &Recorder{kind: kind, frames: make([]Snapshot, 0, 32)}
}

// Record appends s. Recording a frame of another kind is a programming
// error and panics.
func (r *Recorder) Record(s Snapshot) {
	if s.Kind() != r.kind {
		panic("snapshot: recorded " + s.Kind().String() + " frame into " + r.kind.String() + " trace")
	}
	r.frames = append(r.frames, s)
}

// Len returns the number of frames recorded so far.
func (r *Recorder) Len() int { return len(r.frames) }

// Trace seals the recorded frames. Tracers always record an opening frame,
// so an empty recorder panics.
func (r *Recorder) Trace() *Trace {
	if len(r.frames) == 0 {
		panic(ErrEmptyTrace)
	}
	return &Trace{kind: r.kind, frames: slices.Clip(r.frames)}
}
