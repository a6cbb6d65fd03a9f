// Package dijkstra traces Dijkstra's single-source shortest paths over a
// core.Graph with non-negative integer weights.
//
// Edges are followed source→target only. The frontier is a lazy min-heap:
// an improved distance pushes a fresh entry and stale entries are skipped on
// pop. Ties pop in push order, which makes the trace deterministic.
//
// Frames are recorded when a node is finalized (its shortest-path edge turns
// highlighted) and whenever a relaxation improves a neighbour's distance (the
// relaxed edge is considered). The closing status lists every node's distance,
// with ∞ for nodes the start cannot reach.
package dijkstra
