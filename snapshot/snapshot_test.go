package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/tree"
)

func TestArraySnapshotCopiesInput(t *testing.T) {
	values := []int{5, 3, 8}
	s := snapshot.NewArray(values, "start", 0, 2, 7, -1)
	values[0] = 99

	assert.Equal(t, []int{5, 3, 8}, s.Values())
	assert.Equal(t, []int{0, 2}, s.Highlighted())
	assert.Equal(t, snapshot.KindArray, s.Kind())
	assert.Equal(t, "start", s.Status())

	out := s.Values()
	out[1] = 42
	assert.Equal(t, 3, s.At(1).Value)
}

func TestTreeSnapshotVariants(t *testing.T) {
	root := tree.FromLevelOrder([]int{50, 25, 75})

	b := snapshot.NewBSTFound(root, "found 75", "R")
	assert.Equal(t, snapshot.VariantBST, b.Variant())
	assert.Equal(t, snapshot.KindTree, b.Kind())
	assert.True(t, b.IsFound("R"))
	assert.True(t, b.IsHighlighted("R"))
	p, ok := b.Found()
	require.True(t, ok)
	assert.Equal(t, tree.Path("R"), p)

	h := snapshot.NewHeap(root, "compare", "R", tree.Root, "R", "LLL")
	assert.Equal(t, snapshot.VariantHeap, h.Variant())
	// deduplicated, ordered shallow first, missing paths dropped
	assert.Equal(t, []tree.Path{tree.Root, "R"}, h.Highlighted())

	var ts snapshot.TreeSnapshot = h
	_, isBST := ts.(*snapshot.BSTSnapshot)
	assert.False(t, isBST)
}

func TestGraphSnapshotCopies(t *testing.T) {
	nodes := []snapshot.NodeView{{ID: 0, State: snapshot.NodeCurrent}, {ID: 1}}
	edges := []snapshot.EdgeView{{Source: 0, Target: 1, Weight: 4, State: snapshot.EdgeConsidered}}
	s := snapshot.NewGraph(nodes, edges, "considering 0-1")
	nodes[0].State = snapshot.NodeVisited
	edges[0].State = snapshot.EdgeHighlighted

	assert.Equal(t, snapshot.NodeCurrent, s.Node(0).State)
	assert.Equal(t, snapshot.EdgeConsidered, s.Edge(0).State)
	assert.Equal(t, "current", s.Node(0).State.String())
	assert.Equal(t, "considered", s.Edge(0).State.String())
	assert.Equal(t, 2, s.NodeCount())
	assert.Equal(t, 1, s.EdgeCount())
}

func TestNewTrace(t *testing.T) {
	_, err := snapshot.NewTrace()
	assert.ErrorIs(t, err, snapshot.ErrEmptyTrace)

	_, err = snapshot.NewTrace(
		snapshot.NewArray([]int{1}, "a"),
		snapshot.NewGraph(nil, nil, "g"),
	)
	assert.ErrorIs(t, err, snapshot.ErrMixedKinds)

	tr, err := snapshot.NewTrace(snapshot.NewArray([]int{1}, "a"), snapshot.NewArray([]int{1}, "b"))
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, snapshot.KindArray, tr.Kind())
	assert.Equal(t, []string{"a", "b"}, tr.Statuses())
	assert.Equal(t, "b", tr.Last().Status())
}

func TestRecorder(t *testing.T) {
	r := snapshot.NewRecorder(snapshot.KindArray)
	assert.Panics(t, func() { r.Trace() })
	assert.Panics(t, func() { r.Record(snapshot.NewGraph(nil, nil, "x")) })

	r.Record(snapshot.NewArray([]int{2, 1}, "start"))
	tr := r.Trace()
	r.Record(snapshot.NewArray([]int{1, 2}, "later"))
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 2, r.Len())
}
