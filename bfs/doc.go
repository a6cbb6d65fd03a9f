// Package bfs traces breadth-first search over a core.Graph.
//
// Edges are followed source→target only. Frames are recorded:
//
//   - once at the start, with the start node current;
//   - on every dequeue, with the dequeued node current;
//   - on every first discovery of a neighbour, with the discovery edge
//     considered and the neighbour current;
//   - once at the end, listing the visit order.
//
// Discovery edges become highlighted (the BFS tree) after the frame that
// considered them, and discovered nodes stay visited. Neighbours are taken in
// edge-list order, so the trace is fully determined by the graph.
//
// Options mirror the untraced search: WithContext, WithOnEnqueue,
// WithOnDequeue, WithOnVisit, WithMaxDepth and WithFilterNeighbor. A filtered
// or too-deep neighbour is skipped without a frame. Result.PathTo walks the
// Parent links back to the start.
//
// Complexity: O(V + E) time, plus O(V + E) per recorded frame.
package bfs
