package core

import (
	"fmt"

	"github.com/katalvlaran/algoviz/snapshot"
)

// Board tracks the visual state of one graph during a tracer run and records
// a GraphSnapshot every time Snapf is called.
//
// Persistent states (visited, included, highlighted) only ever move forward.
// Focus and Consider are transient: they colour the next frame only.
type Board struct {
	g     *Graph
	nodes []snapshot.NodeState
	edges []snapshot.EdgeState

	focus      []int
	considered []int

	rec *snapshot.Recorder
}

// NewBoard returns a Board with every node unvisited and every edge normal.
func NewBoard(g *Graph) *Board {
	return &Board{
		g:     g,
		nodes: make([]snapshot.NodeState, g.NodeCount()),
		edges: make([]snapshot.EdgeState, g.EdgeCount()),
		rec:   snapshot.NewRecorder(snapshot.KindGraph),
	}
}

// Visit marks the node at position i visited, unless it is already included.
func (b *Board) Visit(i int) {
	if b.nodes[i] < snapshot.NodeVisited {
		b.nodes[i] = snapshot.NodeVisited
	}
}

// Include marks the node at position i as part of the result set.
func (b *Board) Include(i int) { b.nodes[i] = snapshot.NodeIncluded }

// Highlight marks edge ei as part of the result.
func (b *Board) Highlight(ei int) { b.edges[ei] = snapshot.EdgeHighlighted }

// Focus shows the nodes at the given positions as current in the next frame.
func (b *Board) Focus(is ...int) { b.focus = append(b.focus, is...) }

// Consider shows the given edges as considered in the next frame.
func (b *Board) Consider(eis ...int) { b.considered = append(b.considered, eis...) }

// NodeState returns the persistent state of the node at position i.
func (b *Board) NodeState(i int) snapshot.NodeState { return b.nodes[i] }

// EdgeState returns the persistent state of edge ei.
func (b *Board) EdgeState(ei int) snapshot.EdgeState { return b.edges[ei] }

// Snapf records a frame with the formatted status and clears the transient marks.
func (b *Board) Snapf(format string, args ...any) {
	nodes := make([]snapshot.NodeView, len(b.nodes))
	for i, st := range b.nodes {
		nodes[i] = snapshot.NodeView{ID: b.g.ID(i), State: st}
	}
	for _, i := range b.focus {
		nodes[i].State = snapshot.NodeCurrent
	}
	edges := make([]snapshot.EdgeView, len(b.edges))
	for ei, st := range b.edges {
		e := b.g.Edge(ei)
		edges[ei] = snapshot.EdgeView{Source: e.Source, Target: e.Target, Weight: e.Weight, State: st}
	}
	for _, ei := range b.considered {
		edges[ei].State = snapshot.EdgeConsidered
	}
	b.rec.Record(snapshot.NewGraph(nodes, edges, fmt.Sprintf(format, args...)))
	b.focus = b.focus[:0]
	b.considered = b.considered[:0]
}

// Trace seals the recorded frames.
func (b *Board) Trace() *snapshot.Trace { return b.rec.Trace() }
