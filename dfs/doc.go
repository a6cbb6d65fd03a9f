// Package dfs traces recursive, pre-order depth-first search over a core.Graph.
//
// Edges are followed source→target only, in edge-list order. A frame is
// recorded when a node is visited and when an edge to an unvisited node is
// explored; the explored edge is considered in that frame and highlighted
// afterwards, so the final frame shows the DFS tree.
//
// WithFullTraversal restarts from every unvisited node in node order, adding
// a "Restarting" frame per new root, so the final frame shows a DFS forest.
// WithMaxDepth, WithFilterNeighbor, WithOnVisit, WithOnExit and WithContext
// prune or observe the walk.
package dfs
