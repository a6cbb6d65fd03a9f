// Package core defines the graph input model shared by the graph tracers,
// the Board that turns per-node/per-edge visual state into GraphSnapshots,
// and ErrValidation, the error class every input rejection in the engine
// belongs to.
//
// A Graph is a fixed list of integer node IDs and an ordered list of
// source→target edges. The order of both lists is significant: it is the
// order nodes and edges appear in every frame, and the order tracers visit
// neighbours in. Graphs are immutable after NewGraph.
//
// Errors:
//
//	ErrValidation       - class mark carried by every rejection below (and by
//	                      the rejections of the other engine packages).
//	ErrNilGraph         - a nil *Graph was supplied.
//	ErrEmptyGraph       - the graph has no nodes.
//	ErrDuplicateNode    - a node ID appears twice.
//	ErrUnknownEndpoint  - an edge references a node that is not in the graph.
//	ErrNodeNotFound     - a start node is not in the graph.
package core

import (
	"github.com/cockroachdb/errors"
)

// ErrValidation marks malformed input rejected before any frame is produced.
// Test with errors.Is(err, core.ErrValidation).
var ErrValidation = errors.New("validation failed")

// Invalid marks a sentinel as belonging to the ErrValidation class. The
// result matches ErrValidation under both the standard library's errors.Is
// and github.com/cockroachdb/errors.Is, and still unwraps to sentinel.
func Invalid(sentinel error) error {
	return validationError{sentinel}
}

// validationError tags an error with the ErrValidation class.
type validationError struct{ err error }

func (e validationError) Error() string { return e.err.Error() }

func (e validationError) Unwrap() error { return e.err }

func (e validationError) Is(target error) bool { return target == ErrValidation }

// Sentinel errors for graph construction and lookup.
var (
	// ErrNilGraph indicates a nil *Graph was passed to a tracer.
	ErrNilGraph = Invalid(errors.New("core: graph is nil"))

	// ErrEmptyGraph indicates a graph without nodes.
	ErrEmptyGraph = Invalid(errors.New("core: graph has no nodes"))

	// ErrDuplicateNode indicates a node ID listed more than once.
	ErrDuplicateNode = Invalid(errors.New("core: duplicate node id"))

	// ErrUnknownEndpoint indicates an edge whose source or target is not a node.
	ErrUnknownEndpoint = Invalid(errors.New("core: edge endpoint is not a node"))

	// ErrNodeNotFound indicates a start node missing from the graph.
	ErrNodeNotFound = Invalid(errors.New("core: node not found"))
)

// Edge is a weighted source→target pair. Tracers with undirected semantics
// (Kruskal, Prim) read it both ways.
type Edge struct {
	Source int
	Target int
	Weight int
}

// Graph is an immutable node list plus an ordered edge list.
type Graph struct {
	ids   []int
	index map[int]int // node id -> position in ids
	edges []Edge

	// per node position: indices into edges, in edge order
	out      [][]int
	incident [][]int
}
