package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/snapshot"
)

// Kruskal traces Kruskal's algorithm over every edge of g.
// It fails only with core.ErrNilGraph.
//
// Steps:
//  1. Validate: g != nil.
//  2. Sort edge indices by ascending weight (stable, so ties keep input order).
//  3. Initialize the disjoint-set over node positions.
//  4. Consider each edge in order: union its ends or reject it as a cycle.
//  5. A forest with |V|-1 edges spans the graph; every node is then included.
func Kruskal(g *core.Graph) (*snapshot.Trace, *MST, error) {
	// 1. Validate.
	if g == nil {
		return nil, nil, core.ErrNilGraph
	}
	board := core.NewBoard(g)
	mst := &MST{}

	// 2. Sort edges by ascending weight.
	order := make([]int, g.EdgeCount())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return g.Edge(order[a]).Weight < g.Edge(order[b]).Weight
	})
	board.Snapf("Starting Kruskal: %d edges sorted by weight", len(order))

	// 3. Initialize disjoint-set (union-find) structures.
	ds := newDSU(g.NodeCount())

	// 4. Build the forest edge by edge.
	for _, ei := range order {
		e := g.Edge(ei)
		u, v := g.Ends(ei)

		board.Consider(ei)
		board.Focus(u, v)
		board.Snapf("Considering edge %d - %d (weight %d)", e.Source, e.Target, e.Weight)

		if !ds.union(u, v) {
			board.Consider(ei)
			board.Snapf("Rejected edge %d - %d: it would close a cycle", e.Source, e.Target)
			continue
		}
		mst.Edges = append(mst.Edges, e)
		mst.Total += e.Weight
		board.Include(u)
		board.Include(v)
		board.Highlight(ei)
		board.Snapf("Added edge %d - %d to the tree (total %d)", e.Source, e.Target, mst.Total)
	}

	// 5. Report. A single node is a complete tree with no edges.
	mst.Complete = len(mst.Edges) == g.NodeCount()-1
	if mst.Complete {
		for i := 0; i < g.NodeCount(); i++ {
			board.Include(i)
		}
		board.Snapf("Kruskal complete. MST weight: %d (%d edges)", mst.Total, len(mst.Edges))
	} else {
		board.Snapf("Kruskal complete. Graph is disconnected; spanning forest weight: %d (%d edges)", mst.Total, len(mst.Edges))
	}
	return board.Trace(), mst, nil
}

// dsu is a disjoint-set union over node positions.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// find returns the root of u, halving the path on the way up.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}
	return true
}
