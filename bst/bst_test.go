package bst_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/bst"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/tree"
)

func TestInsertIntoSeed(t *testing.T) {
	seed := builder.SeedBST()
	tr, root := bst.Insert(seed, 30)

	assert.Equal(t, "50(25(10,40(30)),75(60,90))", root.String())
	assert.Equal(t, "50(25(10,40),75(60,90))", seed.String(), "input tree must not change")
	assert.Equal(t, []string{
		"Inserting 30",
		"Comparing 30 with 50: go left",
		"Comparing 30 with 25: go right",
		"Comparing 30 with 40: go left",
		"Inserted 30 as the left child of 40",
	}, tr.Statuses())

	last := tr.Last().(*snapshot.BSTSnapshot)
	assert.Equal(t, []tree.Path{"LRL"}, last.Highlighted())
	cmp := tr.At(2).(*snapshot.BSTSnapshot)
	assert.Equal(t, []tree.Path{"L"}, cmp.Highlighted())
	// the comparing frame shows the tree before insertion
	assert.Nil(t, cmp.Root().At("LRL"))
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	seed := builder.SeedBST()
	tr, root := bst.Insert(seed, 40)
	assert.Same(t, seed, root)
	last := tr.Last().(*snapshot.BSTSnapshot)
	assert.Equal(t, "40 is already in the tree; nothing to insert", last.Status())
	assert.Equal(t, []tree.Path{"LR"}, last.Highlighted())
}

func TestInsertIntoEmpty(t *testing.T) {
	tr, root := bst.Insert(nil, 7)
	assert.Equal(t, "7", root.String())
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, snapshot.VariantBST, tr.Last().(*snapshot.BSTSnapshot).Variant())
}

func TestSearch(t *testing.T) {
	tr, ok := bst.Search(builder.SeedBST(), 60)
	require.True(t, ok)
	last := tr.Last().(*snapshot.BSTSnapshot)
	assert.True(t, last.IsFound("RL"))
	assert.Equal(t, "Found 60", last.Status())
	assert.Equal(t, 4, tr.Len())

	tr, ok = bst.Search(builder.SeedBST(), 65)
	assert.False(t, ok)
	assert.Equal(t, "65 not found", tr.Last().Status())
	_, hasFound := tr.Last().(*snapshot.BSTSnapshot).Found()
	assert.False(t, hasFound)

	tr, ok = bst.Search(nil, 1)
	assert.False(t, ok)
	assert.Equal(t, 2, tr.Len())
}

func TestDeleteCases(t *testing.T) {
	cases := []struct {
		name string
		v    int
		want string
	}{
		{"leaf", 10, "50(25(-,40),75(60,90))"},
		{"two children at root", 50, "60(25(10,40),75(-,90))"},
		{"two children inner", 25, "50(40(10),75(60,90))"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, root, ok := bst.Delete(builder.SeedBST(), tc.v)
			require.True(t, ok)
			assert.Equal(t, tc.want, root.String())
			assert.True(t, tree.IsValidBST(root))
			assert.Equal(t, "Deleted "+strconv.Itoa(tc.v), tr.Last().Status())
		})
	}
}

func TestDeleteOneChild(t *testing.T) {
	_, root := bst.Insert(builder.SeedBST(), 30)
	tr, root, ok := bst.Delete(root, 40)
	require.True(t, ok)
	assert.Equal(t, "50(25(10,30),75(60,90))", root.String())
	assert.Contains(t, tr.Statuses(), "40 has one child; moved 30 up into its place")
}

func TestDeleteSuccessorFrames(t *testing.T) {
	tr, _, _ := bst.Delete(builder.SeedBST(), 50)
	assert.Equal(t, []string{
		"Deleting 50",
		"Found 50",
		"50 has two children; its in-order successor is 60",
		"Replaced 50 with 60; removing 60 from the right subtree",
		"Comparing 60 with 75: go left",
		"Found 60",
		"60 is a leaf; removed it",
		"Deleted 50",
	}, tr.Statuses())
}

func TestDeleteMissing(t *testing.T) {
	seed := builder.SeedBST()
	tr, root, ok := bst.Delete(seed, 55)
	assert.False(t, ok)
	assert.Same(t, seed, root)
	assert.Equal(t, "55 not found; nothing to delete", tr.Last().Status())

	_, root, ok = bst.Delete(nil, 1)
	assert.False(t, ok)
	assert.Nil(t, root)
}

func TestRandomOperationsKeepOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	root := builder.SeedBST()
	for i := 0; i < 300; i++ {
		v := rng.Intn(100)
		if rng.Intn(3) == 0 {
			_, root, _ = bst.Delete(root, v)
		} else {
			_, root = bst.Insert(root, v)
		}
		require.True(t, tree.IsValidBST(root), "after op %d: %s", i, root)
	}
}
