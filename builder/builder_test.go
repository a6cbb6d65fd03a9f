package builder_test

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/tree"
)

func TestRandomArrayRespectsBounds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		vs, err := builder.RandomArray(builder.WithSeed(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(vs), 5)
		assert.LessOrEqual(t, len(vs), 15)
		for _, v := range vs {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 100)
		}
	}

	vs, err := builder.RandomArray(builder.WithSeed(1), builder.WithLength(3, 3), builder.WithValueRange(7, 7))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, vs)
}

func TestRandomArrayIsDeterministic(t *testing.T) {
	a, err := builder.RandomArray(builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomArray(builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandomTarget(t *testing.T) {
	values := []int{3, 6, 9}
	hit, err := builder.RandomTarget(values, builder.WithSeed(5), builder.WithHitRate(1))
	require.NoError(t, err)
	assert.Contains(t, values, hit)

	miss, err := builder.RandomTarget(values, builder.WithSeed(5), builder.WithHitRate(0), builder.WithValueRange(50, 60))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, miss, 50)

	_, err = builder.RandomTarget(nil, builder.WithSeed(5))
	assert.True(t, errors.Is(err, builder.ErrEmptyValues))
}

func TestGeneratorsNeedRandSource(t *testing.T) {
	_, err := builder.RandomArray()
	assert.True(t, errors.Is(err, builder.ErrNeedRandSource))
	_, err = builder.RandomTarget([]int{1})
	assert.True(t, errors.Is(err, builder.ErrNeedRandSource))
	_, err = builder.RandomGraph()
	assert.True(t, errors.Is(err, builder.ErrNeedRandSource))
}

func TestRandomGraphShape(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g, err := builder.RandomGraph(builder.WithSeed(seed))
		require.NoError(t, err)
		n := g.NodeCount()
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 10)
		// chain plus closing edge
		assert.GreaterOrEqual(t, g.EdgeCount(), n)
		for i := 0; i < n-1; i++ {
			e := g.Edge(i)
			assert.Equal(t, i, e.Source)
			assert.Equal(t, i+1, e.Target)
		}
		for _, e := range g.Edges() {
			assert.NotEqual(t, e.Source, e.Target)
			assert.GreaterOrEqual(t, e.Weight, 1)
			assert.LessOrEqual(t, e.Weight, 10)
		}
	}
}

func TestOptionsPanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithLength(0, 3) })
	assert.Panics(t, func() { builder.WithLength(4, 3) })
	assert.Panics(t, func() { builder.WithValueRange(2, 1) })
	assert.Panics(t, func() { builder.WithHitRate(1.5) })
	assert.Panics(t, func() { builder.WithNodeRange(1, 4) })
	assert.Panics(t, func() { builder.WithWeightRange(-1, 4) })
	assert.Panics(t, func() { builder.WithExtraEdges(-0.1) })
}

func TestSeeds(t *testing.T) {
	g := builder.SampleGraph()
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 8, g.EdgeCount())

	bst := builder.SeedBST()
	assert.True(t, tree.IsValidBST(bst))
	assert.Equal(t, 50, bst.Value())

	heap := builder.SeedHeap()
	assert.True(t, tree.IsValidHeap(heap))
	assert.True(t, tree.IsComplete(heap))
	assert.Equal(t, 90, heap.Value())
}
