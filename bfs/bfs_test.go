package bfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/snapshot"
)

func TestBFSOnSampleGraph(t *testing.T) {
	tr, res, err := bfs.Trace(builder.SampleGraph(), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3}, res.Depth)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 2, 5: 3}, res.Parent)

	// start + 6 dequeues + 5 discoveries + summary
	require.Equal(t, 13, tr.Len())
	assert.Equal(t, "Starting BFS from node 0", tr.First().Status())
	assert.Equal(t, "BFS complete. Visit order: 0, 1, 2, 3, 4, 5", tr.Last().Status())

	disc := tr.At(2).(*snapshot.GraphSnapshot)
	assert.Equal(t, "Discovered node 1 via edge 0 -> 1", disc.Status())
	assert.Equal(t, snapshot.EdgeConsidered, disc.Edge(0).State)
	assert.Equal(t, snapshot.NodeCurrent, disc.Node(1).State)

	next := tr.At(3).(*snapshot.GraphSnapshot)
	assert.Equal(t, snapshot.EdgeHighlighted, next.Edge(0).State)

	last := tr.Last().(*snapshot.GraphSnapshot)
	for i := 0; i < last.NodeCount(); i++ {
		assert.Equal(t, snapshot.NodeVisited, last.Node(i).State)
	}
	// non-tree edges stay normal
	assert.Equal(t, snapshot.EdgeNormal, last.Edge(2).State)
}

func TestBFSFollowsEdgeDirection(t *testing.T) {
	tr, res, err := bfs.Trace(builder.SampleGraph(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, res.Order)
	assert.Equal(t, 3, tr.Len())
}

func TestBFSRejectsBadStart(t *testing.T) {
	_, _, err := bfs.Trace(builder.SampleGraph(), 42)
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
	assert.True(t, errors.Is(err, core.ErrValidation))

	_, _, err = bfs.Trace(nil, 0)
	assert.True(t, errors.Is(err, core.ErrNilGraph))
}

func TestBFSStateIsMonotonic(t *testing.T) {
	g, err := builder.RandomGraph(builder.WithSeed(3))
	require.NoError(t, err)
	tr, _, err := bfs.Trace(g, 0)
	require.NoError(t, err)
	assertMonotonic(t, tr)
}

func TestBFSMaxDepth(t *testing.T) {
	g := builder.SampleGraph()
	_, res, err := bfs.Trace(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	// 0 is an explicit "no limit"
	_, res, err = bfs.Trace(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)

	_, _, err = bfs.Trace(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	assert.True(t, errors.Is(err, core.ErrValidation))
}

func TestBFSFilterNeighbor(t *testing.T) {
	tr, res, err := bfs.Trace(builder.SampleGraph(), 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 3)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 4, 3, 5}, res.Order)
	assert.Equal(t, 4, res.Parent[3])
	assert.NotContains(t, tr.Statuses(), "Discovered node 3 via edge 1 -> 3")
}

func TestBFSHooks(t *testing.T) {
	var calls []string
	_, _, err := bfs.Trace(builder.SampleGraph(), 2,
		bfs.WithOnEnqueue(func(id, d int) { calls = append(calls, fmt.Sprintf("e%d@%d", id, d)) }),
		bfs.WithOnDequeue(func(id, d int) { calls = append(calls, fmt.Sprintf("d%d@%d", id, d)) }),
		bfs.WithOnVisit(func(id, d int) error { calls = append(calls, fmt.Sprintf("v%d@%d", id, d)); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"e2@0", "d2@0", "v2@0",
		"e4@1", "d4@1", "v4@1",
		"e3@2", "e5@2", "d3@2", "v3@2", "d5@2", "v5@2",
	}, calls)

	boom := errors.New("boom")
	tr, res, err := bfs.Trace(builder.SampleGraph(), 0,
		bfs.WithOnVisit(func(id, _ int) error {
			if id == 2 {
				return boom
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, tr)
	assert.Nil(t, res)
}

func TestBFSCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := bfs.Trace(builder.SampleGraph(), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFSPathTo(t *testing.T) {
	_, res, err := bfs.Trace(builder.SampleGraph(), 0)
	require.NoError(t, err)

	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 5}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, res, err = bfs.Trace(builder.SampleGraph(), 3)
	require.NoError(t, err)
	_, err = res.PathTo(0)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// assertMonotonic checks that persistent states never regress between frames.
// Transient states (current, considered) are ignored.
func assertMonotonic(t *testing.T, tr *snapshot.Trace) {
	t.Helper()
	var prev *snapshot.GraphSnapshot
	for i, f := range tr.Frames() {
		cur := f.(*snapshot.GraphSnapshot)
		if prev != nil {
			for n := 0; n < cur.NodeCount(); n++ {
				a, b := prev.Node(n).State, cur.Node(n).State
				if a == snapshot.NodeCurrent || b == snapshot.NodeCurrent {
					continue
				}
				assert.GreaterOrEqual(t, b, a, "frame %d node %d", i, n)
			}
			for e := 0; e < cur.EdgeCount(); e++ {
				a, b := prev.Edge(e).State, cur.Edge(e).State
				if a == snapshot.EdgeConsidered || b == snapshot.EdgeConsidered {
					continue
				}
				assert.GreaterOrEqual(t, b, a, "frame %d edge %d", i, e)
			}
		}
		prev = cur
	}
}
