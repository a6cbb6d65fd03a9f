// Package algoviz traces classic algorithms step by step and plays the
// resulting frames back as an animation.
//
// A tracer runs synchronously to completion and returns an immutable
// snapshot.Trace: one frame per meaningful action, each frame a self-contained
// picture of the algorithm's state. Nothing renders while tracing, and no
// frame is ever edited after it is recorded.
//
// Packages, leaves first:
//
//	tree/           persistent binary trees with copy-on-path edits
//	snapshot/       array, tree (BST or heap) and graph frames; Trace, Recorder
//	core/           weighted directed graphs and the shared validation error
//	sorting/        bubble, insertion, selection, merge, quick and heap sort
//	searching/      linear and binary search
//	bfs/, dfs/      traversals
//	dijkstra/       single-source shortest paths
//	prim_kruskal/   minimum spanning trees
//	bst/            insert, search and delete on a binary search tree
//	maxheap/        insert, extract-max and build on a max-heap
//	builder/        random inputs and the seed structures
//	engine/         Session: the persistent BST, heap and graph of one user
//	playback/       Controller: play, pause, step, reset and speed over a Trace
//
// Quick example:
//
//	tr, _ := sorting.Trace(sorting.Bubble, []int{5, 3, 8, 1})
//	c := playback.New()
//	_ = c.Load(tr)
//	_ = c.StepForward()
//	fmt.Println(c.Current().Status()) // Comparing 5 and 3
//
// The algoviz command in cmd/algoviz drives all of it from a terminal.
package algoviz
