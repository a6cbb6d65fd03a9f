package bst

import (
	"fmt"

	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/tree"
)

// tracer records BST frames over a root that it replaces as it goes.
type tracer struct {
	root *tree.Node
	rec  *snapshot.Recorder
}

func newTracer(root *tree.Node) *tracer {
	return &tracer{root: root, rec: snapshot.NewRecorder(snapshot.KindTree)}
}

func (t *tracer) snap(status string, highlight ...tree.Path) {
	t.rec.Record(snapshot.NewBST(t.root, status, highlight...))
}

func (t *tracer) found(status string, p tree.Path) {
	t.rec.Record(snapshot.NewBSTFound(t.root, status, p))
}

// step returns the child of p to descend into when looking for v.
func step(p tree.Path, v, at int) tree.Path {
	if v < at {
		return p.Left()
	}
	return p.Right()
}

func direction(v, at int) string {
	if v < at {
		return "left"
	}
	return "right"
}

// Insert adds v to the tree rooted at root and returns the frames and the new root.
func Insert(root *tree.Node, v int) (*snapshot.Trace, *tree.Node) {
	t := newTracer(root)
	t.snap(fmt.Sprintf("Inserting %d", v))
	if root == nil {
		t.root = tree.New(v)
		t.snap(fmt.Sprintf("The tree was empty; %d is the new root", v), tree.Root)
		return t.rec.Trace(), t.root
	}

	p := tree.Root
	for {
		at := t.root.At(p).Value()
		if v == at {
			t.snap(fmt.Sprintf("%d is already in the tree; nothing to insert", v), p)
			return t.rec.Trace(), t.root
		}
		t.snap(fmt.Sprintf("Comparing %d with %d: go %s", v, at, direction(v, at)), p)
		next := step(p, v, at)
		if !t.root.Has(next) {
			t.root = t.root.Replace(next, tree.New(v))
			t.snap(fmt.Sprintf("Inserted %d as the %s child of %d", v, next.Side(), at), next)
			return t.rec.Trace(), t.root
		}
		p = next
	}
}

// Search looks v up without changing the tree.
func Search(root *tree.Node, v int) (*snapshot.Trace, bool) {
	t := newTracer(root)
	t.snap(fmt.Sprintf("Searching for %d", v))
	p := tree.Root
	for t.root.Has(p) {
		at := t.root.At(p).Value()
		if v == at {
			t.found(fmt.Sprintf("Found %d", v), p)
			return t.rec.Trace(), true
		}
		t.snap(fmt.Sprintf("Comparing %d with %d: go %s", v, at, direction(v, at)), p)
		p = step(p, v, at)
	}
	t.snap(fmt.Sprintf("%d not found", v))
	return t.rec.Trace(), false
}

// Delete removes v and returns the frames, the new root and whether v was present.
// A miss returns root unchanged.
func Delete(root *tree.Node, v int) (*snapshot.Trace, *tree.Node, bool) {
	t := newTracer(root)
	t.snap(fmt.Sprintf("Deleting %d", v))
	if root == nil {
		t.snap(fmt.Sprintf("The tree is empty; %d not found", v))
		return t.rec.Trace(), root, false
	}
	if !t.remove(tree.Root, v) {
		return t.rec.Trace(), root, false
	}
	t.snap(fmt.Sprintf("Deleted %d", v))
	return t.rec.Trace(), t.root, true
}

// remove deletes v from the subtree at from, recording the search frames.
func (t *tracer) remove(from tree.Path, v int) bool {
	p := from
	for {
		n := t.root.At(p)
		if n == nil {
			t.snap(fmt.Sprintf("%d not found; nothing to delete", v))
			return false
		}
		if v == n.Value() {
			break
		}
		t.snap(fmt.Sprintf("Comparing %d with %d: go %s", v, n.Value(), direction(v, n.Value())), p)
		p = step(p, v, n.Value())
	}

	n := t.root.At(p)
	t.found(fmt.Sprintf("Found %d", v), p)
	switch {
	case n.IsLeaf():
		t.root = t.root.Replace(p, nil)
		t.snap(fmt.Sprintf("%d is a leaf; removed it", v))
	case n.Left() == nil || n.Right() == nil:
		child := n.Left()
		if child == nil {
			child = n.Right()
		}
		t.root = t.root.Replace(p, child)
		t.snap(fmt.Sprintf("%d has one child; moved %d up into its place", v, child.Value()), p)
	default:
		s := p.Right()
		for t.root.Has(s.Left()) {
			s = s.Left()
		}
		succ := t.root.At(s).Value()
		t.snap(fmt.Sprintf("%d has two children; its in-order successor is %d", v, succ), p, s)
		t.root = t.root.SetValue(p, succ)
		t.snap(fmt.Sprintf("Replaced %d with %d; removing %d from the right subtree", v, succ, succ), p)
		t.remove(p.Right(), succ)
	}
	return true
}
