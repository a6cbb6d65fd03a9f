package engine

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/searching"
	"github.com/katalvlaran/algoviz/snapshot"
)

// Family selects the stateless tracer RunTrace dispatches to.
type Family string

const (
	FamilySort   Family = "sort"
	FamilySearch Family = "search"
	FamilyGraph  Family = "graph"
)

// Graph algorithm names accepted in Request.Algorithm for FamilyGraph.
const (
	BFS      = "bfs"
	DFS      = "dfs"
	Dijkstra = "dijkstra"
	Kruskal  = "kruskal"
	Prim     = "prim"
)

// GraphAlgorithms lists the graph algorithm names.
func GraphAlgorithms() []string { return []string{BFS, DFS, Dijkstra, Kruskal, Prim} }

// Structure names a persistent tree kept by the session.
type Structure string

const (
	StructureBST  Structure = "bst"
	StructureHeap Structure = "heap"
)

// Operation names a structure operation.
type Operation string

const (
	OpInsert     Operation = "insert"
	OpSearch     Operation = "search"
	OpDelete     Operation = "delete"
	OpExtractMax Operation = "extract-max"
	OpBuild      Operation = "build"
	OpClear      Operation = "clear"
)

// Operations lists what each structure supports.
func Operations(st Structure) []Operation {
	switch st {
	case StructureBST:
		return []Operation{OpInsert, OpSearch, OpDelete, OpClear}
	case StructureHeap:
		return []Operation{OpInsert, OpExtractMax, OpBuild, OpClear}
	default:
		return nil
	}
}

// Phase is the session's position in Idle → Tracing → Committed.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTracing
	PhaseCommitted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTracing:
		return "tracing"
	case PhaseCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Request describes one stateless trace.
type Request struct {
	Family    Family
	Algorithm string
	// Values feeds FamilySort and FamilySearch.
	Values []int
	// Target is the value FamilySearch looks for.
	Target int
	// Graph feeds FamilyGraph; nil means the session's current graph.
	Graph *core.Graph
	// Start is the start node ID for every graph algorithm except Kruskal.
	Start int
	// MaxDepth limits BFS and DFS to nodes at most this many edges from the
	// start. 0 means no limit.
	MaxDepth int
	// Dest, when set, asks BFS, DFS and Dijkstra for the path from Start to
	// this node. The path lands in Outcome.Path and the summary.
	Dest *int
}

// Outcome is what RunTrace and Apply hand back.
type Outcome struct {
	Trace *snapshot.Trace
	// Search is set for FamilySearch only.
	Search *searching.Result
	// Path is the start-to-Dest path when Request.Dest was set and reached.
	Path []int
	// Summary is a one-line description of the result.
	Summary string
}

var (
	// ErrUnknownFamily indicates a Request.Family outside the three families.
	ErrUnknownFamily = core.Invalid(errors.New("engine: unknown trace family"))
	// ErrUnknownGraphAlgorithm indicates a graph algorithm name not in GraphAlgorithms().
	ErrUnknownGraphAlgorithm = core.Invalid(errors.New("engine: unknown graph algorithm"))
	// ErrUnknownStructure indicates a structure other than bst or heap.
	ErrUnknownStructure = core.Invalid(errors.New("engine: unknown structure"))
	// ErrUnsupportedOperation indicates an operation the structure does not offer.
	ErrUnsupportedOperation = core.Invalid(errors.New("engine: operation not supported by structure"))
	// ErrMissingValue indicates an operation called without the value it needs.
	ErrMissingValue = core.Invalid(errors.New("engine: operation needs a value"))
	// ErrNegativeDepth indicates a negative Request.MaxDepth.
	ErrNegativeDepth = core.Invalid(errors.New("engine: max depth is negative"))
)

// ParseStructure resolves a case-insensitive structure name.
func ParseStructure(name string) (Structure, error) {
	st := Structure(strings.ToLower(strings.TrimSpace(name)))
	if Operations(st) == nil {
		return "", errors.Wrapf(ErrUnknownStructure, "%q", name)
	}
	return st, nil
}

// ParseOperation resolves a case-insensitive operation name for st.
func ParseOperation(st Structure, name string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Operations(st), op) {
		return "", errors.Wrapf(ErrUnsupportedOperation, "%s %q", st, name)
	}
	return op, nil
}

// NeedsValue reports whether op takes a single value argument.
func (op Operation) NeedsValue() bool {
	switch op {
	case OpInsert, OpSearch, OpDelete:
		return true
	default:
		return false
	}
}
