package dijkstra

import (
	"context"
	"math"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
)

var (
	// ErrNegativeWeight is returned when any edge weight is negative.
	ErrNegativeWeight = core.Invalid(errors.New("dijkstra: negative edge weight"))

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo for a node the start cannot reach.
	ErrNoPath = errors.New("dijkstra: no path to node")
)

// Options configures one Trace.
//
// Ctx              - checked before every pop; cancellation aborts the trace.
// MaxDistance      - nodes whose distance would exceed it are never reached.
// InfEdgeThreshold - edges with weight ≥ it are impassable.
type Options struct {
	Ctx              context.Context
	MaxDistance      int
	InfEdgeThreshold int
}

// Option represents a functional option for configuring Trace.
type Option func(*Options)

// DefaultOptions returns a background context, no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.MaxInt,
		InfEdgeThreshold: math.MaxInt,
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

// WithMaxDistance caps the distances explored. Panics on a negative limit.
func WithMaxDistance(limit int) Option {
	if limit < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = limit }
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics unless threshold > 0.
func WithInfEdgeThreshold(threshold int) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// Result holds the shortest distances found, keyed by node ID.
type Result struct {
	// Dist holds the distance of every reachable node.
	Dist map[int]int
	// Prev maps every reachable node except the start to its predecessor.
	Prev map[int]int
}

// Reachable reports whether id was reached, and at what distance.
func (r *Result) Reachable(id int) (int, bool) {
	d, ok := r.Dist[id]
	return d, ok
}

// PathTo returns the shortest path from the start to dest, both included.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, errors.Wrapf(ErrNoPath, "%d", dest)
	}
	path := []int{dest}
	for cur, ok := r.Prev[dest]; ok; cur, ok = r.Prev[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path, nil
}
