package bfs

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = core.Invalid(errors.New("bfs: invalid option supplied"))

// Option configures Trace via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation before any frame is produced.
type Option func(*Options)

// Options holds parameters and callbacks that customize one Trace.
// Hooks receive node IDs, not positions.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked before every
	// dequeue and before every neighbour.
	Ctx context.Context

	// OnEnqueue is called when a node is discovered, with its depth.
	OnEnqueue func(id, depth int)

	// OnDequeue is called right before a node's "Dequeued" frame.
	OnDequeue func(id, depth int)

	// OnVisit is called after a node's "Dequeued" frame. A non-nil error
	// aborts the trace and is returned wrapped.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops discovery beyond this depth.
	// 0 means no limit.
	MaxDepth int

	// FilterNeighbor can skip the edge curr -> neighbor by returning false.
	// A skipped edge produces no frame.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from it stops the trace.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
