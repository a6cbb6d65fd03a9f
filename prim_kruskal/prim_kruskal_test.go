package prim_kruskal_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/prim_kruskal"
	"github.com/katalvlaran/algoviz/snapshot"
)

// buildTwoIslands returns 0-1 (1) and 2-3 (2) with no link between them.
func buildTwoIslands() *core.Graph {
	return core.MustGraph(core.Sequential(4), []core.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 2, Target: 3, Weight: 2},
	})
}

func TestKruskalSampleGraph(t *testing.T) {
	tr, mst, err := prim_kruskal.Kruskal(builder.SampleGraph())
	require.NoError(t, err)
	assert.Equal(t, 19, mst.Total)
	assert.True(t, mst.Complete)
	assert.Len(t, mst.Edges, 5)

	// start + two frames per edge + summary
	assert.Equal(t, 18, tr.Len())
	assert.Equal(t, "Kruskal complete. MST weight: 19 (5 edges)", tr.Last().Status())

	statuses := tr.Statuses()
	assert.Equal(t, "Considering edge 0 - 2 (weight 2)", statuses[1])
	assert.Equal(t, "Added edge 0 - 2 to the tree (total 2)", statuses[2])
	assert.Contains(t, statuses, "Rejected edge 1 - 2: it would close a cycle")

	last := tr.Last().(*snapshot.GraphSnapshot)
	for i := 0; i < last.NodeCount(); i++ {
		assert.Equal(t, snapshot.NodeIncluded, last.Node(i).State)
	}
}

func TestPrimSampleGraph(t *testing.T) {
	tr, mst, err := prim_kruskal.Prim(builder.SampleGraph(), 0)
	require.NoError(t, err)
	assert.Equal(t, 19, mst.Total)
	assert.True(t, mst.Complete)
	assert.Equal(t, []core.Edge{
		{Source: 0, Target: 2, Weight: 2},
		{Source: 2, Target: 4, Weight: 3},
		{Source: 0, Target: 1, Weight: 4},
		{Source: 4, Target: 3, Weight: 4},
		{Source: 4, Target: 5, Weight: 6},
	}, mst.Edges)
	// start + two frames per added edge + summary
	assert.Equal(t, 12, tr.Len())
	assert.Equal(t, "Prim complete. MST weight: 19 (5 edges)", tr.Last().Status())
}

func TestPrimAndKruskalAgreeOnWeight(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g, err := builder.RandomGraph(builder.WithSeed(seed))
		require.NoError(t, err)
		_, k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		for _, start := range g.Nodes() {
			_, p, err := prim_kruskal.Prim(g, start)
			require.NoError(t, err)
			assert.True(t, p.Complete)
			assert.Equal(t, k.Total, p.Total, "seed %d start %d", seed, start)
		}
	}
}

func TestDisconnectedGraph(t *testing.T) {
	g := buildTwoIslands()

	tr, mst, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.False(t, mst.Complete)
	assert.Equal(t, 1, mst.Total)
	assert.Equal(t, "Graph is disconnected: 2 of 4 nodes reached, no edge crosses the cut", tr.Last().Status())

	tr, mst, err = prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.False(t, mst.Complete)
	assert.Equal(t, 3, mst.Total)
	assert.Contains(t, tr.Last().Status(), "disconnected")
}

func TestSingleNodeIsIncluded(t *testing.T) {
	g := core.MustGraph([]int{7}, nil)
	for name, run := range map[string]func() (*snapshot.Trace, *prim_kruskal.MST, error){
		"kruskal": func() (*snapshot.Trace, *prim_kruskal.MST, error) { return prim_kruskal.Kruskal(g) },
		"prim":    func() (*snapshot.Trace, *prim_kruskal.MST, error) { return prim_kruskal.Prim(g, 7) },
	} {
		t.Run(name, func(t *testing.T) {
			tr, mst, err := run()
			require.NoError(t, err)
			assert.True(t, mst.Complete)
			assert.Empty(t, mst.Edges)
			last := tr.Last().(*snapshot.GraphSnapshot)
			assert.Equal(t, snapshot.NodeIncluded, last.Node(0).State)
		})
	}
}

func TestRejectsBadInput(t *testing.T) {
	_, _, err := prim_kruskal.Prim(builder.SampleGraph(), 9)
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
	assert.True(t, errors.Is(err, core.ErrValidation))

	_, _, err = prim_kruskal.Kruskal(nil)
	assert.True(t, errors.Is(err, core.ErrNilGraph))
}
