package dijkstra

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/internal/text"
	"github.com/katalvlaran/algoviz/snapshot"
)

// Trace runs Dijkstra on g from the node with ID start.
// It fails with core.ErrNilGraph, core.ErrNodeNotFound or ErrNegativeWeight,
// all validation errors, or with the context's error when cancelled.
//
// Steps:
//  1. Validate the graph and resolve the start node.
//  2. Reject any negative edge weight up front.
//  3. Seed the frontier with the start at distance 0.
//  4. Pop, finalize and relax until the frontier is empty.
//  5. Record the summary frame and collect the result.
func Trace(g *core.Graph, start int, opts ...Option) (*snapshot.Trace, *Result, error) {
	// 1. Validate the graph and resolve the start node.
	if g == nil {
		return nil, nil, core.ErrNilGraph
	}
	s, err := g.Start(start)
	if err != nil {
		return nil, nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Reject any negative edge weight up front; a single one breaks the
	//    finalize-once invariant.
	for ei, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, errors.Wrapf(ErrNegativeWeight, "edge %d: %d -> %d (%d)", ei, e.Source, e.Target, e.Weight)
		}
	}

	// 3. Seed the frontier.
	r := &runner{g: g, cfg: cfg, board: core.NewBoard(g)}
	r.init(s)

	// 4. Main loop.
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	// 5. Summary.
	r.board.Snapf("Dijkstra complete. Distances from %d: %s", start, r.summary())
	return r.board.Trace(), r.result(), nil
}

// runner holds the mutable state of one run, indexed by node position.
type runner struct {
	g     *core.Graph
	cfg   Options
	board *core.Board

	dist     []int
	reached  []bool
	done     []bool
	prevEdge []int // -1 for the start and unreached nodes
	pq       nodePQ
	seq      int
}

func (r *runner) init(s int) {
	n := r.g.NodeCount()
	r.dist = make([]int, n)
	r.reached = make([]bool, n)
	r.done = make([]bool, n)
	r.prevEdge = make([]int, n)
	for i := range r.prevEdge {
		r.prevEdge[i] = -1
	}
	r.pq = make(nodePQ, 0, n)

	r.reached[s] = true
	r.push(s, 0)
	r.board.Focus(s)
	r.board.Snapf("Starting Dijkstra from node %d (distance 0, all others ∞)", r.g.ID(s))
}

func (r *runner) push(i, d int) {
	heap.Push(&r.pq, &nodeItem{node: i, dist: d, seq: r.seq})
	r.seq++
}

// process pops nodes until the frontier is empty, finalizing each once.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// a) cancellation check, once per pop
		if err := r.cfg.Ctx.Err(); err != nil {
			return errors.Wrap(err, "dijkstra")
		}

		// b) pop the closest entry and skip it if a shorter one was pushed later
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.node
		if r.done[u] || item.dist > r.dist[u] {
			continue // stale
		}

		// c) finalize u and relax its out-edges
		r.done[u] = true
		r.board.Visit(u)
		if pe := r.prevEdge[u]; pe >= 0 {
			r.board.Highlight(pe)
		}
		r.board.Focus(u)
		r.board.Snapf("Finalized node %d at distance %d", r.g.ID(u), r.dist[u])
		r.relax(u)
	}
	return nil
}

// relax tries every out-edge of u and records a frame for each improvement.
// Edges at or above InfEdgeThreshold and distances above MaxDistance are
// skipped without a frame.
func (r *runner) relax(u int) {
	for _, ei := range r.g.Out(u) {
		_, v := r.g.Ends(ei)
		if r.done[v] {
			continue
		}
		w := r.g.Edge(ei).Weight
		if w >= r.cfg.InfEdgeThreshold {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.cfg.MaxDistance {
			continue
		}
		if r.reached[v] && nd >= r.dist[v] {
			continue
		}
		r.reached[v] = true
		r.dist[v] = nd
		r.prevEdge[v] = ei
		r.push(v, nd)
		r.board.Consider(ei)
		r.board.Focus(v)
		r.board.Snapf("Relaxed edge %d -> %d: distance to %d is now %d", r.g.ID(u), r.g.ID(v), r.g.ID(v), nd)
	}
}

func (r *runner) summary() string {
	parts := make([]string, r.g.NodeCount())
	for i := range parts {
		parts[i] = fmt.Sprintf("%d=%s", r.g.ID(i), text.Distance(r.dist[i], r.reached[i]))
	}
	return strings.Join(parts, ", ")
}

func (r *runner) result() *Result {
	res := &Result{Dist: make(map[int]int), Prev: make(map[int]int)}
	for i := range r.dist {
		if !r.reached[i] {
			continue
		}
		res.Dist[r.g.ID(i)] = r.dist[i]
		if pe := r.prevEdge[i]; pe >= 0 {
			res.Prev[r.g.ID(i)] = r.g.Edge(pe).Source
		}
	}
	return res
}

// nodeItem is a frontier entry: a node position and the distance it was
// pushed with.
type nodeItem struct {
	node int
	dist int
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
