// Package snapshot defines the immutable frames produced by every tracer and
// the Trace that orders them.
//
// A Snapshot is one of three shapes, told apart by Kind:
//
//   - *ArraySnapshot  values with per-index highlight (sorting, searching)
//   - *BSTSnapshot / *HeapSnapshot  a persistent tree with highlighted paths;
//     only the BST variant carries a found marker
//   - *GraphSnapshot  per-node and per-edge visual state
//
// Snapshots copy everything they are given at construction time and hand out
// copies from their accessors, so no two frames ever alias mutable state.
// Tree snapshots share structure through the persistent tree.Node, which is
// itself immutable.
package snapshot
