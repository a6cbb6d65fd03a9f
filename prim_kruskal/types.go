package prim_kruskal

import (
	"github.com/katalvlaran/algoviz/core"
)

// MST is the spanning tree (or forest) a trace ends with.
type MST struct {
	// Edges in the order they were added.
	Edges []core.Edge
	// Total is the sum of the edge weights.
	Total int
	// Complete is false when the graph is disconnected: Kruskal then returns
	// a spanning forest and Prim the tree of the start node's component.
	Complete bool
}
