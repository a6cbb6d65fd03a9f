package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/sorting"
)

func inputs() [][]int {
	rng := rand.New(rand.NewSource(7))
	out := [][]int{
		{5, 3, 8, 1},
		{1},
		{2, 1},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{4, 4, 2, 4, 1, 2},
		{-3, 10, 0, -3, 7},
	}
	for n := 5; n <= 15; n += 5 {
		vs := make([]int, n)
		for i := range vs {
			vs[i] = 1 + rng.Intn(100)
		}
		out = append(out, vs)
	}
	return out
}

func TestEveryAlgorithmSorts(t *testing.T) {
	for _, alg := range sorting.Algorithms() {
		for _, in := range inputs() {
			orig := slices.Clone(in)
			tr, err := sorting.Trace(alg, in)
			require.NoError(t, err, "%s %v", alg, in)
			assert.Equal(t, orig, in, "%s mutated its input", alg)

			want := slices.Clone(in)
			slices.Sort(want)

			first := tr.First().(*snapshot.ArraySnapshot)
			last := tr.Last().(*snapshot.ArraySnapshot)
			assert.Equal(t, sorting.StatusStart, first.Status())
			assert.Equal(t, in, first.Values())
			assert.Empty(t, first.Highlighted())
			assert.Equal(t, sorting.StatusSorted, last.Status())
			assert.Equal(t, want, last.Values(), "%s %v", alg, in)
			assert.Empty(t, last.Highlighted())
		}
	}
}

func TestFramesArePermutationsOfInput(t *testing.T) {
	in := []int{9, 2, 7, 2, 5, 1, 8}
	want := slices.Clone(in)
	slices.Sort(want)
	for _, alg := range sorting.Algorithms() {
		tr, err := sorting.Trace(alg, in)
		require.NoError(t, err)
		assert.Equal(t, snapshot.KindArray, tr.Kind())
		for i, f := range tr.Frames() {
			a := f.(*snapshot.ArraySnapshot)
			require.Equal(t, len(in), a.Len(), "%s frame %d", alg, i)
			got := a.Values()
			slices.Sort(got)
			require.Equal(t, want, got, "%s frame %d (%s)", alg, i, a.Status())
			assert.NotEmpty(t, a.Status())
		}
		assert.Greater(t, tr.Len(), 2, alg)
	}
}

func TestBubbleScenario(t *testing.T) {
	tr, err := sorting.Trace(sorting.Bubble, []int{5, 3, 8, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5, 8}, tr.Last().(*snapshot.ArraySnapshot).Values())
	require.Equal(t, 12, tr.Len())

	cmp := tr.At(1).(*snapshot.ArraySnapshot)
	assert.Equal(t, "Comparing 5 and 3", cmp.Status())
	assert.Equal(t, []int{0, 1}, cmp.Highlighted())

	swp := tr.At(2).(*snapshot.ArraySnapshot)
	assert.Equal(t, "Swapped 5 and 3", swp.Status())
	assert.Equal(t, []int{3, 5, 8, 1}, swp.Values())
}

func TestMergeShowsEachMergedRun(t *testing.T) {
	tr, err := sorting.Trace(sorting.Merge, []int{4, 3, 2, 1})
	require.NoError(t, err)
	var merged []string
	for _, s := range tr.Statuses() {
		if len(s) > 6 && s[:6] == "Merged" {
			merged = append(merged, s)
		}
	}
	assert.Equal(t, []string{
		"Merged [0..1] into [3 4]",
		"Merged [2..3] into [1 2]",
		"Merged [0..3] into [1 2 3 4]",
	}, merged)
}

func TestQuickShowsPivotPlacement(t *testing.T) {
	tr, err := sorting.Trace(sorting.Quick, []int{3, 1, 2})
	require.NoError(t, err)
	statuses := tr.Statuses()
	assert.Contains(t, statuses, "Partitioning [0..2] around pivot 2")
	assert.Contains(t, statuses, "Placed pivot 2 at index 1")
}

func TestHeapBuildsBeforeExtracting(t *testing.T) {
	tr, err := sorting.Trace(sorting.Heap, []int{1, 5, 3})
	require.NoError(t, err)
	statuses := tr.Statuses()
	build := slices.Index(statuses, "Building a max-heap")
	built := slices.Index(statuses, "Max-heap built, maximum is 5")
	extract := slices.Index(statuses, "Moving maximum 5 to index 2")
	require.True(t, build >= 0 && built > build && extract > built, "%v", statuses)
}

func TestRejectsBadInput(t *testing.T) {
	_, err := sorting.Trace(sorting.Bubble, nil)
	assert.True(t, errors.Is(err, sorting.ErrEmptyInput))
	assert.True(t, errors.Is(err, core.ErrValidation))

	_, err = sorting.Trace("bogo", []int{1})
	assert.True(t, errors.Is(err, sorting.ErrUnknownAlgorithm))
	assert.True(t, errors.Is(err, core.ErrValidation))
}

func TestParseAlgorithm(t *testing.T) {
	a, err := sorting.ParseAlgorithm(" Quick ")
	require.NoError(t, err)
	assert.Equal(t, sorting.Quick, a)

	_, err = sorting.ParseAlgorithm("shell")
	assert.True(t, errors.Is(err, sorting.ErrUnknownAlgorithm))
}
