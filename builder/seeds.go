// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// seeds.go: the fixed structures a fresh session starts from.

package builder

import (
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/tree"
)

// SampleGraph returns the 6-node demonstration graph:
//
//	0→1 (4)  0→2 (2)  1→2 (5)  1→3 (10)
//	2→4 (3)  3→5 (7)  4→3 (4)  4→5 (6)
//
// Its minimum spanning tree weighs 19; Dijkstra from 0 reaches
// 0=0, 1=4, 2=2, 3=9, 4=5, 5=11.
func SampleGraph() *core.Graph {
	return core.MustGraph(core.Sequential(6), []core.Edge{
		{Source: 0, Target: 1, Weight: 4},
		{Source: 0, Target: 2, Weight: 2},
		{Source: 1, Target: 2, Weight: 5},
		{Source: 1, Target: 3, Weight: 10},
		{Source: 2, Target: 4, Weight: 3},
		{Source: 3, Target: 5, Weight: 7},
		{Source: 4, Target: 3, Weight: 4},
		{Source: 4, Target: 5, Weight: 6},
	})
}

// SeedBST returns 50(25(10,40),75(60,90)).
func SeedBST() *tree.Node {
	return tree.FromLevelOrder([]int{50, 25, 75, 10, 40, 60, 90})
}

// SeedHeap returns the max-heap 90(70(30,50),60(20,40)).
func SeedHeap() *tree.Node {
	return tree.FromLevelOrder([]int{90, 70, 60, 30, 50, 20, 40})
}
