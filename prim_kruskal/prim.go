package prim_kruskal

import (
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/snapshot"
)

// Prim traces Prim's algorithm on g from the node with ID start.
// It fails with core.ErrNilGraph or core.ErrNodeNotFound. A disconnected
// graph is not an error: the trace ends with a "disconnected" frame and the
// MST is marked incomplete.
//
// Steps:
//  1. Validate: g != nil and start is a node.
//  2. Include the start node.
//  3. While nodes remain outside the tree, add the lightest edge crossing the
//     cut; ties go to the first candidate found scanning tree nodes in
//     inclusion order.
//  4. No crossing edge means the graph is disconnected; stop there.
func Prim(g *core.Graph, start int) (*snapshot.Trace, *MST, error) {
	// 1. Validate.
	if g == nil {
		return nil, nil, core.ErrNilGraph
	}
	s, err := g.Start(start)
	if err != nil {
		return nil, nil, err
	}
	board := core.NewBoard(g)
	mst := &MST{}

	// 2. Seed the tree with the start node.
	in := make([]bool, g.NodeCount())
	order := []int{s} // included nodes, in inclusion order
	in[s] = true
	board.Include(s)
	board.Snapf("Starting Prim from node %d", start)

	// 3. Grow the tree one crossing edge at a time.
	for len(order) < g.NodeCount() {
		best, to := -1, -1
		for _, u := range order {
			for _, ei := range g.Incident(u) {
				v := g.Other(ei, u)
				if in[v] {
					continue
				}
				if best < 0 || g.Edge(ei).Weight < g.Edge(best).Weight {
					best, to = ei, v
				}
			}
		}
		// 4. Nothing crosses the cut.
		if best < 0 {
			board.Snapf("Graph is disconnected: %d of %d nodes reached, no edge crosses the cut", len(order), g.NodeCount())
			return board.Trace(), mst, nil
		}

		e := g.Edge(best)
		board.Consider(best)
		board.Focus(to)
		board.Snapf("Considering edge %d - %d (weight %d), the lightest edge crossing the cut", e.Source, e.Target, e.Weight)

		in[to] = true
		order = append(order, to)
		mst.Edges = append(mst.Edges, e)
		mst.Total += e.Weight
		board.Include(to)
		board.Highlight(best)
		board.Snapf("Added edge %d - %d to the tree (total %d)", e.Source, e.Target, mst.Total)
	}

	mst.Complete = true
	board.Snapf("Prim complete. MST weight: %d (%d edges)", mst.Total, len(mst.Edges))
	return board.Trace(), mst, nil
}
