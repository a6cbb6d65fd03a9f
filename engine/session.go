package engine

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/bst"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/internal/logging"
	"github.com/katalvlaran/algoviz/internal/text"
	"github.com/katalvlaran/algoviz/maxheap"
	"github.com/katalvlaran/algoviz/prim_kruskal"
	"github.com/katalvlaran/algoviz/searching"
	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/tree"
)

// Session holds the current BST, heap and graph of one user.
type Session struct {
	mu    sync.Mutex
	log   *slog.Logger
	phase Phase

	bst   *tree.Node
	heap  *tree.Node
	graph *core.Graph
}

// NewSession returns a session seeded with builder.SeedBST, builder.SeedHeap
// and builder.SampleGraph, then applies opts.
func NewSession(opts ...Option) *Session {
	s := &Session{
		log:   logging.Discard(),
		bst:   builder.SeedBST(),
		heap:  builder.SeedHeap(),
		graph: builder.SampleGraph(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase reports where the last call left the session.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Tree returns the current root of st (nil when empty or unknown).
func (s *Session) Tree(st Structure) *tree.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch st {
	case StructureBST:
		return s.bst
	case StructureHeap:
		return s.heap
	default:
		return nil
	}
}

// Graph returns the current graph.
func (s *Session) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph
}

// SetGraph replaces the current graph.
func (s *Session) SetGraph(g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = g
	s.log.Debug("graph replaced", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return nil
}

// ResetGraph restores the sample graph.
func (s *Session) ResetGraph() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = builder.SampleGraph()
}

// Reset restores st to its seed structure.
func (s *Session) Reset(st Structure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch st {
	case StructureBST:
		s.bst = builder.SeedBST()
	case StructureHeap:
		s.heap = builder.SeedHeap()
	default:
		return errors.Wrapf(ErrUnknownStructure, "%q", st)
	}
	s.phase = PhaseIdle
	s.log.Debug("structure reset", "structure", st)
	return nil
}

// RunTrace runs one stateless tracer. It never touches the persistent trees.
func (s *Session) RunTrace(req Request) (*Outcome, error) {
	return s.RunTraceContext(context.Background(), req)
}

// RunTraceContext is RunTrace with a context that cancels the graph tracers.
func (s *Session) RunTraceContext(ctx context.Context, req Request) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		out *Outcome
		err error
	)
	switch req.Family {
	case FamilySort:
		out, err = runSort(req)
	case FamilySearch:
		out, err = runSearch(req)
	case FamilyGraph:
		g := req.Graph
		if g == nil {
			g = s.graph
		}
		out, err = runGraph(ctx, req, g)
	default:
		err = errors.Wrapf(ErrUnknownFamily, "%q", req.Family)
	}
	if err != nil {
		s.log.Debug("trace rejected", "family", req.Family, "algorithm", req.Algorithm, "err", err)
		return nil, err
	}
	s.log.Debug("trace generated", "family", req.Family, "algorithm", req.Algorithm, "frames", out.Trace.Len())
	return out, nil
}

func runSort(req Request) (*Outcome, error) {
	alg, err := sorting.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, err
	}
	tr, err := sorting.Trace(alg, req.Values)
	if err != nil {
		return nil, err
	}
	final := tr.Last().(*snapshot.ArraySnapshot).Values()
	return &Outcome{Trace: tr, Summary: fmt.Sprintf("sorted: %v", final)}, nil
}

func runSearch(req Request) (*Outcome, error) {
	alg, err := searching.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, err
	}
	tr, res, err := searching.Trace(alg, req.Values, req.Target)
	if err != nil {
		return nil, err
	}
	summary := fmt.Sprintf("%d not found", req.Target)
	if res.Found {
		summary = fmt.Sprintf("found %d at index %d", req.Target, res.Index)
		if res.Sorted {
			summary += " of the sorted copy"
		}
	}
	return &Outcome{Trace: tr, Search: &res, Summary: summary}, nil
}

func runGraph(ctx context.Context, req Request, g *core.Graph) (*Outcome, error) {
	if req.MaxDepth < 0 {
		return nil, errors.Wrapf(ErrNegativeDepth, "%d", req.MaxDepth)
	}
	switch req.Algorithm {
	case BFS:
		opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithMaxDepth(req.MaxDepth)}
		tr, res, err := bfs.Trace(g, req.Start, opts...)
		if err != nil {
			return nil, err
		}
		out := &Outcome{Trace: tr, Summary: "visit order: " + text.Ints(res.Order)}
		withPath(out, req.Dest, res.PathTo)
		return out, nil
	case DFS:
		opts := []dfs.Option{dfs.WithContext(ctx)}
		if req.MaxDepth > 0 {
			opts = append(opts, dfs.WithMaxDepth(req.MaxDepth))
		}
		tr, res, err := dfs.Trace(g, req.Start, opts...)
		if err != nil {
			return nil, err
		}
		out := &Outcome{Trace: tr, Summary: "visit order: " + text.Ints(res.Order)}
		withPath(out, req.Dest, res.PathTo)
		return out, nil
	case Dijkstra:
		tr, res, err := dijkstra.Trace(g, req.Start, dijkstra.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		out := &Outcome{Trace: tr, Summary: tr.Last().Status()}
		if req.Dest != nil {
			if d, ok := res.Reachable(*req.Dest); ok {
				out.Summary = fmt.Sprintf("distance to %d: %d", *req.Dest, d)
			}
		}
		withPath(out, req.Dest, res.PathTo)
		return out, nil
	case Kruskal:
		tr, mst, err := prim_kruskal.Kruskal(g)
		if err != nil {
			return nil, err
		}
		return &Outcome{Trace: tr, Summary: mstSummary(mst)}, nil
	case Prim:
		tr, mst, err := prim_kruskal.Prim(g, req.Start)
		if err != nil {
			return nil, err
		}
		return &Outcome{Trace: tr, Summary: mstSummary(mst)}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownGraphAlgorithm, "%q", req.Algorithm)
	}
}

// withPath fills out.Path from pathTo and appends it to the summary. An
// unreached dest is reported in the summary, not as an error.
func withPath(out *Outcome, dest *int, pathTo func(int) ([]int, error)) {
	if dest == nil {
		return
	}
	path, err := pathTo(*dest)
	if err != nil {
		out.Summary += fmt.Sprintf("; %d is unreachable", *dest)
		return
	}
	out.Path = path
	out.Summary += "; path: " + text.Ints(path)
}

func mstSummary(m *prim_kruskal.MST) string {
	if !m.Complete {
		return fmt.Sprintf("graph is disconnected; partial tree weight %d", m.Total)
	}
	return fmt.Sprintf("MST weight %d", m.Total)
}

// Apply runs op on st against the current tree and commits the result.
// Search leaves the tree untouched. Insert, search and delete need exactly one
// value; build takes any number; extract-max and clear take none.
func (s *Session) Apply(st Structure, op Operation, values ...int) (*Outcome, error) {
	if !isSupported(st, op) {
		if Operations(st) == nil {
			return nil, errors.Wrapf(ErrUnknownStructure, "%q", st)
		}
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s %s", st, op)
	}
	if op.NeedsValue() && len(values) != 1 {
		return nil, errors.Wrapf(ErrMissingValue, "%s %s got %d values", st, op, len(values))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseTracing

	var out *Outcome
	switch st {
	case StructureBST:
		out = s.applyBST(op, values)
	case StructureHeap:
		out = s.applyHeap(op, values)
	}

	if op == OpSearch {
		s.phase = PhaseIdle
	} else {
		s.phase = PhaseCommitted
	}
	s.log.Debug("structure operation", "structure", st, "op", op, "frames", out.Trace.Len(), "phase", s.phase)
	return out, nil
}

func isSupported(st Structure, op Operation) bool {
	return slices.Contains(Operations(st), op)
}

// applyBST runs op against s.bst; the caller holds s.mu.
func (s *Session) applyBST(op Operation, values []int) *Outcome {
	switch op {
	case OpInsert:
		tr, root := bst.Insert(s.bst, values[0])
		s.bst = root
		return &Outcome{Trace: tr, Summary: tr.Last().Status()}
	case OpSearch:
		tr, ok := bst.Search(s.bst, values[0])
		summary := fmt.Sprintf("%d not found", values[0])
		if ok {
			summary = fmt.Sprintf("found %d", values[0])
		}
		return &Outcome{Trace: tr, Summary: summary}
	case OpDelete:
		tr, root, _ := bst.Delete(s.bst, values[0])
		s.bst = root
		return &Outcome{Trace: tr, Summary: tr.Last().Status()}
	default: // OpClear
		s.bst = nil
		return &Outcome{Trace: single(snapshot.NewBST(nil, "Cleared the tree")), Summary: "cleared"}
	}
}

// applyHeap runs op against s.heap; the caller holds s.mu.
func (s *Session) applyHeap(op Operation, values []int) *Outcome {
	switch op {
	case OpInsert:
		tr, root := maxheap.Insert(s.heap, values[0])
		s.heap = root
		return &Outcome{Trace: tr, Summary: tr.Last().Status()}
	case OpExtractMax:
		tr, root, top, ok := maxheap.ExtractMax(s.heap)
		s.heap = root
		summary := "heap is empty"
		if ok {
			summary = fmt.Sprintf("extracted %d", top)
		}
		return &Outcome{Trace: tr, Summary: summary}
	case OpBuild:
		tr, root := maxheap.Build(values)
		s.heap = root
		return &Outcome{Trace: tr, Summary: tr.Last().Status()}
	default: // OpClear
		s.heap = nil
		return &Outcome{Trace: single(snapshot.NewHeap(nil, "Cleared the heap")), Summary: "cleared"}
	}
}

func single(s snapshot.Snapshot) *snapshot.Trace {
	tr, err := snapshot.NewTrace(s)
	if err != nil {
		panic(err) // one frame always makes a valid trace
	}
	return tr
}
