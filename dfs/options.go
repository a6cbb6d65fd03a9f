package dfs

import "context"

// Option configures Trace.
type Option func(*Options)

// Options holds the hooks, limits and traversal mode of one Trace.
// Hooks receive node IDs.
type Options struct {
	// Ctx allows cancellation; it is checked before every visit.
	Ctx context.Context

	// OnVisit, if non-nil, runs after a node's "Visiting" frame (pre-order).
	// Returning an error aborts the trace.
	OnVisit func(id int) error

	// OnExit, if non-nil, runs once all descendants of a node are explored
	// (post-order). Returning an error aborts the trace.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// 0 visits only the start node. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is asked before each neighbour is explored.
	// Skipped neighbours are counted in Result.SkippedNeighbors.
	FilterNeighbor func(id int) bool

	// FullTraversal restarts from every unvisited node, in node order, once
	// the start's tree is done.
	FullTraversal bool
}

// DefaultOptions returns a background context, no hooks, no depth limit, no
// filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. A negative limit means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(id int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every component, not only the start's.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}
