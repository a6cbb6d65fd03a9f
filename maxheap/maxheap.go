package maxheap

import (
	"fmt"

	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/tree"
)

type tracer struct {
	root *tree.Node
	rec  *snapshot.Recorder
}

func newTracer(root *tree.Node) *tracer {
	return &tracer{root: root, rec: snapshot.NewRecorder(snapshot.KindTree)}
}

func (t *tracer) snap(status string, highlight ...tree.Path) {
	t.rec.Record(snapshot.NewHeap(t.root, status, highlight...))
}

func (t *tracer) value(p tree.Path) int { return t.root.At(p).Value() }

// Insert adds v and returns the frames and the new root.
func Insert(root *tree.Node, v int) (*snapshot.Trace, *tree.Node) {
	t := newTracer(root)
	t.snap(fmt.Sprintf("Inserting %d", v))
	if root == nil {
		t.root = tree.New(v)
		t.snap(fmt.Sprintf("The heap was empty; %d is the new root", v), tree.Root)
		t.snap(fmt.Sprintf("Inserted %d", v))
		return t.rec.Trace(), t.root
	}

	slot := root.NextSlot()
	parent := slot.Parent()
	t.snap(fmt.Sprintf("Next free slot is the %s child of %d", slot.Side(), t.value(parent)), parent)
	t.root = t.root.Replace(slot, tree.New(v))
	t.snap(fmt.Sprintf("Placed %d as the %s child of %d", v, slot.Side(), t.value(parent)), slot)
	t.siftUp(slot)
	t.snap(fmt.Sprintf("Inserted %d", v))
	return t.rec.Trace(), t.root
}

// siftUp moves the value at p towards the root while it beats its parent.
func (t *tracer) siftUp(p tree.Path) {
	for !p.IsRoot() {
		up := p.Parent()
		cv, pv := t.value(p), t.value(up)
		if pv >= cv {
			t.snap(fmt.Sprintf("Heap property holds: parent %d >= %d", pv, cv), up, p)
			return
		}
		t.snap(fmt.Sprintf("Comparing %d with parent %d", cv, pv), up, p)
		t.root = t.root.Swap(p, up)
		t.snap(fmt.Sprintf("Swapped %d and %d", cv, pv), up)
		p = up
	}
}

// ExtractMax removes the root. It returns the frames, the new root, the
// removed maximum and false if the heap was empty.
func ExtractMax(root *tree.Node) (*snapshot.Trace, *tree.Node, int, bool) {
	t := newTracer(root)
	t.snap("Extracting the maximum")
	if root == nil {
		t.snap("The heap is empty; nothing to extract")
		return t.rec.Trace(), nil, 0, false
	}

	top := root.Value()
	t.snap(fmt.Sprintf("The maximum is %d at the root", top), tree.Root)
	if root.IsLeaf() {
		t.root = nil
		t.snap(fmt.Sprintf("Removed %d; the heap is now empty", top))
		return t.rec.Trace(), nil, top, true
	}

	last, _ := root.Last()
	lv := t.value(last)
	t.snap(fmt.Sprintf("The last node holds %d", lv), last)
	t.root = t.root.SetValue(tree.Root, lv).Replace(last, nil)
	t.snap(fmt.Sprintf("Moved %d to the root and removed the last node", lv), tree.Root)
	t.siftDown(tree.Root)
	t.snap(fmt.Sprintf("Extracted %d", top))
	return t.rec.Trace(), t.root, top, true
}

// siftDown moves the value at p down while its larger child beats it.
func (t *tracer) siftDown(p tree.Path) {
	for {
		n := t.root.At(p)
		if n.Left() == nil {
			return
		}
		c := p.Left()
		if n.Right() != nil && n.Right().Value() > n.Left().Value() {
			c = p.Right()
		}
		v, cv := n.Value(), t.value(c)
		if cv <= v {
			t.snap(fmt.Sprintf("Heap property holds: %d >= larger child %d", v, cv), p, c)
			return
		}
		t.snap(fmt.Sprintf("Comparing %d with larger child %d", v, cv), p, c)
		t.root = t.root.Swap(p, c)
		t.snap(fmt.Sprintf("Swapped %d and %d", v, cv), c)
		p = c
	}
}

// Build lays values out in level order and sifts every internal node down,
// last internal node first. It returns the frames and the new root.
func Build(values []int) (*snapshot.Trace, *tree.Node) {
	t := newTracer(tree.FromLevelOrder(values))
	if len(values) == 0 {
		t.snap("Nothing to build; the heap is empty")
		return t.rec.Trace(), nil
	}
	t.snap(fmt.Sprintf("Placed %d values in level order", len(values)))
	paths := t.root.LevelOrder()
	for i := len(values)/2 - 1; i >= 0; i-- {
		t.snap(fmt.Sprintf("Sifting down %d", t.value(paths[i])), paths[i])
		t.siftDown(paths[i])
	}
	t.snap(fmt.Sprintf("Built a heap of %d values", len(values)))
	return t.rec.Trace(), t.root
}
