package core

import (
	"github.com/cockroachdb/errors"
)

// NewGraph validates nodes and edges and builds an immutable Graph.
// Node IDs must be unique and every edge endpoint must be a listed node.
// Self-loops and parallel edges are accepted.
//
// Complexity: O(V + E).
func NewGraph(nodes []int, edges []Edge) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	g := &Graph{
		ids:      make([]int, len(nodes)),
		index:    make(map[int]int, len(nodes)),
		edges:    make([]Edge, len(edges)),
		out:      make([][]int, len(nodes)),
		incident: make([][]int, len(nodes)),
	}
	copy(g.ids, nodes)
	copy(g.edges, edges)

	for i, id := range g.ids {
		if _, dup := g.index[id]; dup {
			return nil, errors.Wrapf(ErrDuplicateNode, "node %d", id)
		}
		g.index[id] = i
	}
	for ei, e := range g.edges {
		s, ok := g.index[e.Source]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownEndpoint, "edge %d: source %d", ei, e.Source)
		}
		t, ok := g.index[e.Target]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownEndpoint, "edge %d: target %d", ei, e.Target)
		}
		g.out[s] = append(g.out[s], ei)
		g.incident[s] = append(g.incident[s], ei)
		if t != s {
			g.incident[t] = append(g.incident[t], ei)
		}
	}
	return g, nil
}

// MustGraph is NewGraph for fixed inputs known to be valid; it panics on error.
func MustGraph(nodes []int, edges []Edge) *Graph {
	g, err := NewGraph(nodes, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// Sequential returns the IDs 0..n-1.
func Sequential(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ID returns the ID of the node at position i.
func (g *Graph) ID(i int) int { return g.ids[i] }

// Index returns the position of node id.
func (g *Graph) Index(id int) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Edge returns edge ei.
func (g *Graph) Edge(ei int) Edge { return g.edges[ei] }

// Nodes returns a copy of the node IDs in order.
func (g *Graph) Nodes() []int {
	out := make([]int, len(g.ids))
	copy(out, g.ids)
	return out
}

// Edges returns a copy of the edge list in order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Out returns the indices of the edges leaving the node at position i, in edge order.
func (g *Graph) Out(i int) []int { return g.out[i] }

// Incident returns the indices of the edges touching the node at position i
// at either end, in edge order. A self-loop is listed once.
func (g *Graph) Incident(i int) []int { return g.incident[i] }

// Ends returns the positions of edge ei's source and target.
func (g *Graph) Ends(ei int) (s, t int) {
	e := g.edges[ei]
	return g.index[e.Source], g.index[e.Target]
}

// Other returns the position of the endpoint of edge ei opposite position i.
func (g *Graph) Other(ei, i int) int {
	s, t := g.Ends(ei)
	if s == i {
		return t
	}
	return s
}

// Start resolves a start node ID, wrapping ErrNodeNotFound when it is absent.
func (g *Graph) Start(id int) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "start node %d", id)
	}
	return i, nil
}
