package dfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/internal/text"
	"github.com/katalvlaran/algoviz/snapshot"
)

type dfsWalker struct {
	g       *core.Graph
	opts    Options
	board   *core.Board
	visited []bool
	res     *Result
}

// Trace runs DFS on g from the node with ID start.
// It fails with core.ErrNilGraph or core.ErrNodeNotFound (both validation
// errors), with the context's error when cancelled, or with a hook's error.
// No trace is returned on failure.
func Trace(g *core.Graph, start int, opts ...Option) (*snapshot.Trace, *Result, error) {
	if g == nil {
		return nil, nil, core.ErrNilGraph
	}
	s, err := g.Start(start)
	if err != nil {
		return nil, nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &dfsWalker{
		g:       g,
		opts:    o,
		board:   core.NewBoard(g),
		visited: make([]bool, g.NodeCount()),
		res:     &Result{Depth: make(map[int]int), Parent: make(map[int]int)},
	}
	w.board.Snapf("Starting DFS from node %d", start)
	if err := w.traverse(s, 0); err != nil {
		return nil, nil, err
	}
	if o.FullTraversal {
		for i := 0; i < g.NodeCount(); i++ {
			if w.visited[i] {
				continue
			}
			w.board.Snapf("Restarting DFS from node %d", g.ID(i))
			if err := w.traverse(i, 0); err != nil {
				return nil, nil, err
			}
		}
	}
	w.board.Snapf("DFS complete. Visit order: %s", text.Ints(w.res.Order))
	return w.board.Trace(), w.res, nil
}

// traverse visits the node at position u and recurses into each unvisited
// out-neighbour in edge order.
func (w *dfsWalker) traverse(u, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return errors.Wrap(err, "dfs")
	}
	w.visited[u] = true
	uid := w.g.ID(u)
	w.res.Order = append(w.res.Order, uid)
	w.res.Depth[uid] = depth
	w.board.Visit(u)
	w.board.Focus(u)
	w.board.Snapf("Visiting node %d", uid)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(uid); err != nil {
			return errors.Wrapf(err, "dfs: OnVisit hook for %d", uid)
		}
	}

	for _, ei := range w.g.Out(u) {
		_, v := w.g.Ends(ei)
		if w.visited[v] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			break
		}
		vid := w.g.ID(v)
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(vid) {
			w.res.SkippedNeighbors++
			continue
		}
		w.res.Parent[vid] = uid
		w.board.Consider(ei)
		w.board.Focus(u)
		w.board.Snapf("Exploring edge %d -> %d", uid, vid)
		w.board.Highlight(ei)
		if err := w.traverse(v, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(uid); err != nil {
			return errors.Wrapf(err, "dfs: OnExit hook for %d", uid)
		}
	}
	return nil
}
