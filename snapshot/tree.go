package snapshot

import (
	"slices"

	"github.com/katalvlaran/algoviz/tree"
)

// TreeVariant tells the BST frames from the heap frames.
type TreeVariant int

const (
	// VariantBST frames may mark one node as found.
	VariantBST TreeVariant = iota + 1
	// VariantHeap frames never carry a found marker.
	VariantHeap
)

func (v TreeVariant) String() string {
	switch v {
	case VariantBST:
		return "bst"
	case VariantHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// TreeSnapshot is the behaviour shared by both tree variants.
type TreeSnapshot interface {
	Snapshot
	Variant() TreeVariant
	// Root returns the (immutable) tree the frame shows, nil when empty.
	Root() *tree.Node
	// IsHighlighted reports whether the node at p is highlighted.
	IsHighlighted(p tree.Path) bool
	// Highlighted returns the highlighted paths, shortest first.
	Highlighted() []tree.Path
}

type treeFrame struct {
	root   *tree.Node
	marks  []tree.Path
	status string
}

func newTreeFrame(root *tree.Node, status string, marks []tree.Path) treeFrame {
	kept := make([]tree.Path, 0, len(marks))
	for _, p := range marks {
		if root.Has(p) {
			kept = append(kept, p)
		}
	}
	slices.SortFunc(kept, comparePaths)
	kept = slices.Compact(kept)
	return treeFrame{root: root, marks: kept, status: status}
}

// comparePaths orders paths by depth, then left before right.
func comparePaths(a, b tree.Path) int {
	if d := a.Depth() - b.Depth(); d != 0 {
		return d
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (f *treeFrame) Kind() Kind               { return KindTree }
func (f *treeFrame) Status() string           { return f.status }
func (f *treeFrame) Root() *tree.Node         { return f.root }
func (f *treeFrame) Highlighted() []tree.Path { return slices.Clone(f.marks) }

func (f *treeFrame) IsHighlighted(p tree.Path) bool {
	return slices.Contains(f.marks, p)
}

// BSTSnapshot is a frame of the binary search tree tracer.
type BSTSnapshot struct {
	treeFrame
	found    tree.Path
	hasFound bool
}

// NewBST returns a BST frame highlighting the given paths.
func NewBST(root *tree.Node, status string, highlight ...tree.Path) *BSTSnapshot {
	return &BSTSnapshot{treeFrame: newTreeFrame(root, status, highlight)}
}

// NewBSTFound returns a BST frame whose node at p is marked found (and highlighted).
func NewBSTFound(root *tree.Node, status string, p tree.Path) *BSTSnapshot {
	s := NewBST(root, status, p)
	if root.Has(p) {
		s.found, s.hasFound = p, true
	}
	return s
}

// Variant implements TreeSnapshot.
func (s *BSTSnapshot) Variant() TreeVariant { return VariantBST }

// Found returns the path of the found node, if any.
func (s *BSTSnapshot) Found() (tree.Path, bool) { return s.found, s.hasFound }

// IsFound reports whether the node at p is the found node.
func (s *BSTSnapshot) IsFound(p tree.Path) bool { return s.hasFound && s.found == p }

// HeapSnapshot is a frame of the max-heap tracer.
type HeapSnapshot struct {
	treeFrame
}

// NewHeap returns a heap frame highlighting the given paths.
func NewHeap(root *tree.Node, status string, highlight ...tree.Path) *HeapSnapshot {
	return &HeapSnapshot{treeFrame: newTreeFrame(root, status, highlight)}
}

// Variant implements TreeSnapshot.
func (s *HeapSnapshot) Variant() TreeVariant { return VariantHeap }
