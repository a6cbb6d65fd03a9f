// Package bst traces insert, search and delete on a persistent binary search
// tree.
//
// Operations take the current root and return the new one. The input tree
// is never modified: every change copies the path to the change (see package
// tree), so frames recorded earlier keep showing the state they captured.
//
// The tree holds a set. Inserting a value already present highlights the
// existing node and changes nothing.
//
// Frames:
//
//   - Insert: one "comparing" frame per ancestor visited, then a frame
//     highlighting the new node.
//   - Search: one frame per node visited; the match is marked found, a miss
//     ends with a "not found" frame.
//   - Delete: the search frames, a found frame, then the leaf, one-child or
//     two-children (in-order successor) case, with the successor removed
//     recursively from the right subtree.
package bst
