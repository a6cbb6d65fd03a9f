package snapshot

import "github.com/cockroachdb/errors"

// Kind identifies which shape a Snapshot (and therefore a Trace) has.
type Kind int

const (
	// KindArray frames come from the sorting and searching tracers.
	KindArray Kind = iota + 1
	// KindTree frames come from the BST and heap tracers.
	KindTree
	// KindGraph frames come from the graph tracers.
	KindGraph
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindTree:
		return "tree"
	case KindGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// Snapshot is one immutable frame of an animation.
type Snapshot interface {
	// Kind reports the frame's shape.
	Kind() Kind
	// Status describes the action that produced the frame.
	Status() string
}

var (
	// ErrEmptyTrace is returned when a Trace would hold no frames.
	ErrEmptyTrace = errors.New("snapshot: trace has no frames")
	// ErrMixedKinds is returned when frames of different kinds are combined.
	ErrMixedKinds = errors.New("snapshot: frames of different kinds")
)
