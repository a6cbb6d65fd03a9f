// Package maxheap traces insert, extract-max and build on a max-heap held as
// a persistent, explicitly linked complete binary tree.
//
// There is no backing array. The insertion slot is the first empty child
// position of a breadth-first scan (tree.Node.NextSlot), and the node that
// replaces the root on extraction is the last node in level order
// (tree.Node.Last). Both keep the tree complete.
//
// Sift-up records a "comparing" and a "swapped" frame for every level it
// climbs, or a single "heap property holds" frame where it stops. Sift-down
// does the same against the larger child. Every operation ends with a frame
// without highlights.
package maxheap
