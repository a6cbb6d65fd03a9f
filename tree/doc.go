// Package tree provides the persistent binary tree shared by the BST and
// max-heap tracers.
//
// A *Node is immutable once built. Every "mutation" (SetValue, Replace, Swap)
// copies only the nodes on the path from the root to the target and returns a
// new root, so earlier roots captured in snapshots keep rendering exactly the
// state they were taken in.
//
// Nodes carry no identity of their own: a node is addressed by its Path, the
// string of left/right turns taken from the root ("" is the root, "LR" is the
// right child of the root's left child).
//
// The nil *Node is the empty tree and every read method accepts it.
//
// Predicates:
//
//   - IsValidHeap  every node ≥ both children (max-heap order)
//   - IsValidBST   left subtree < node < right subtree, strictly
//   - IsComplete   level-order shape with no gaps
package tree
