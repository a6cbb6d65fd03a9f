// Package prim_kruskal traces the two classic minimum spanning tree
// algorithms over a core.Graph, reading every edge as undirected.
//
// Kruskal sorts edge indices by weight (stable, so ties keep edge-list
// order) and feeds them through a disjoint-set union with path compression
// and union by rank. Each edge yields a "considering" frame followed by an
// "added" or "rejected" frame.
//
// Prim grows a node set from a start node. At each step it scans the incident
// edges of every included node, in inclusion order then edge order, and takes
// the first strictly lightest edge crossing the cut. If no edge crosses while
// nodes remain, it records a "disconnected" frame and stops.
//
// On a connected graph both report the same total weight. The edge sets may
// differ under weight ties.
package prim_kruskal
