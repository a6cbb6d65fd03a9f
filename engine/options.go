package engine

import (
	"log/slog"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/tree"
)

// Option customizes a Session at construction.
type Option func(*Session)

// WithLogger routes the session's debug logging to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(s *Session) { s.log = l }
}

// WithGraph starts the session on g instead of the sample graph. Panics on nil.
func WithGraph(g *core.Graph) Option {
	if g == nil {
		panic("engine: WithGraph(nil)")
	}
	return func(s *Session) { s.graph = g }
}

// WithBST starts the session with root as its BST (nil for empty).
func WithBST(root *tree.Node) Option {
	return func(s *Session) { s.bst = root }
}

// WithHeap starts the session with root as its heap (nil for empty).
func WithHeap(root *tree.Node) Option {
	return func(s *Session) { s.heap = root }
}
