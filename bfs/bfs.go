package bfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/internal/text"
	"github.com/katalvlaran/algoviz/snapshot"
)

// walker holds the mutable state of one run.
type walker struct {
	g          *core.Graph
	opts       Options
	board      *core.Board
	queue      []int
	discovered []bool
	res        *Result
}

// Trace runs BFS on g from the node with ID start, applying any number of
// Options. It fails with core.ErrNilGraph, core.ErrNodeNotFound or
// ErrOptionViolation (all validation errors), with the context's error when
// cancelled, or with the error returned by an OnVisit hook. No trace is
// returned on failure.
func Trace(g *core.Graph, start int, opts ...Option) (*snapshot.Trace, *Result, error) {
	if g == nil {
		return nil, nil, core.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	s, err := g.Start(start)
	if err != nil {
		return nil, nil, err
	}
	w := &walker{
		g:          g,
		opts:       o,
		board:      core.NewBoard(g),
		discovered: make([]bool, g.NodeCount()),
		res: &Result{
			Order:  make([]int, 0, g.NodeCount()),
			Depth:  make(map[int]int, g.NodeCount()),
			Parent: make(map[int]int),
		},
	}
	w.board.Focus(s)
	w.board.Snapf("Starting BFS from node %d", start)
	w.enqueue(s, 0)
	if err := w.loop(); err != nil {
		return nil, nil, err
	}
	w.board.Snapf("BFS complete. Visit order: %s", text.Ints(w.res.Order))
	return w.board.Trace(), w.res, nil
}

func (w *walker) enqueue(i, depth int) {
	id := w.g.ID(i)
	w.discovered[i] = true
	w.res.Depth[id] = depth
	w.board.Visit(i)
	w.opts.OnEnqueue(id, depth)
	w.queue = append(w.queue, i)
}

func (w *walker) dequeue() int {
	i := w.queue[0]
	w.queue = w.queue[1:]
	return i
}

// loop processes the queue until it is empty, a hook fails or the context
// is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return errors.Wrap(err, "bfs")
		}
		u := w.dequeue()
		id := w.g.ID(u)
		depth := w.res.Depth[id]
		w.opts.OnDequeue(id, depth)
		w.res.Order = append(w.res.Order, id)
		w.board.Focus(u)
		w.board.Snapf("Dequeued node %d", id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit error at %d", id)
		}
		if err := w.visit(u); err != nil {
			return err
		}
	}
	return nil
}

// visit discovers every undiscovered out-neighbour of u that passes the
// filter and the depth limit.
func (w *walker) visit(u int) error {
	uid := w.g.ID(u)
	next := w.res.Depth[uid] + 1
	for _, ei := range w.g.Out(u) {
		if err := w.opts.Ctx.Err(); err != nil {
			return errors.Wrap(err, "bfs")
		}
		_, v := w.g.Ends(ei)
		if w.discovered[v] {
			continue
		}
		vid := w.g.ID(v)
		if !w.opts.FilterNeighbor(uid, vid) {
			continue
		}
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[vid] = uid
		w.enqueue(v, next)
		w.board.Consider(ei)
		w.board.Focus(v)
		w.board.Snapf("Discovered node %d via edge %d -> %d", vid, uid, vid)
		w.board.Highlight(ei)
	}
	return nil
}
