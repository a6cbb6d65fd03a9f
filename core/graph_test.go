package core_test

import (
	stderrors "errors"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/snapshot"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]int{10, 20, 30}, []core.Edge{
		{Source: 10, Target: 20, Weight: 1},
		{Source: 20, Target: 30, Weight: 2},
		{Source: 30, Target: 10, Weight: 3},
		{Source: 20, Target: 20, Weight: 9},
	})
	require.NoError(t, err)
	return g
}

func TestNewGraphRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		nodes []int
		edges []core.Edge
		want  error
	}{
		{"empty", nil, nil, core.ErrEmptyGraph},
		{"duplicate", []int{1, 1}, nil, core.ErrDuplicateNode},
		{"bad source", []int{1, 2}, []core.Edge{{Source: 3, Target: 1}}, core.ErrUnknownEndpoint},
		{"bad target", []int{1, 2}, []core.Edge{{Source: 1, Target: 7}}, core.ErrUnknownEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.nodes, tc.edges)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.True(t, errors.Is(err, core.ErrValidation))
		})
	}
}

func TestValidationClassMatchesStdlibIs(t *testing.T) {
	_, err := core.NewGraph(nil, nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, core.ErrValidation))
	assert.True(t, stderrors.Is(err, core.ErrEmptyGraph))
	assert.False(t, stderrors.Is(err, core.ErrDuplicateNode))
	assert.ErrorIs(t, err, core.ErrValidation)

	wrapped := errors.Wrapf(core.Invalid(errors.New("custom rejection")), "while loading %d", 7)
	assert.True(t, stderrors.Is(wrapped, core.ErrValidation))
	assert.True(t, errors.Is(wrapped, core.ErrValidation))
	assert.Contains(t, wrapped.Error(), "custom rejection")

	assert.False(t, stderrors.Is(errors.New("plain"), core.ErrValidation))
}

func TestGraphAdjacency(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	i, ok := g.Index(20)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, []int{1, 3}, g.Out(i))
	assert.Equal(t, []int{0, 1, 3}, g.Incident(i))
	assert.Equal(t, 0, g.Other(0, 1))
	assert.Equal(t, 1, g.Other(3, 1))

	_, err := g.Start(99)
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
	assert.True(t, errors.Is(err, core.ErrValidation))

	nodes := g.Nodes()
	nodes[0] = -1
	assert.Equal(t, 10, g.ID(0))
}

func TestBoardTransientMarks(t *testing.T) {
	g := triangle(t)
	b := core.NewBoard(g)

	b.Visit(0)
	b.Focus(1)
	b.Consider(0)
	b.Snapf("step %d", 1)

	b.Include(1)
	b.Visit(1) // does not downgrade included
	b.Highlight(0)
	b.Snapf("step %d", 2)

	tr := b.Trace()
	require.Equal(t, 2, tr.Len())

	first := tr.At(0).(*snapshot.GraphSnapshot)
	assert.Equal(t, "step 1", first.Status())
	assert.Equal(t, snapshot.NodeVisited, first.Node(0).State)
	assert.Equal(t, snapshot.NodeCurrent, first.Node(1).State)
	assert.Equal(t, snapshot.EdgeConsidered, first.Edge(0).State)
	assert.Equal(t, 20, first.Edge(0).Target)

	second := tr.At(1).(*snapshot.GraphSnapshot)
	assert.Equal(t, snapshot.NodeIncluded, second.Node(1).State)
	assert.Equal(t, snapshot.NodeUnvisited, second.Node(2).State)
	assert.Equal(t, snapshot.EdgeHighlighted, second.Edge(0).State)
	assert.Equal(t, snapshot.EdgeNormal, second.Edge(1).State)
}
