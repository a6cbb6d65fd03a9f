package bfs_test

import (
	"testing"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
)

// BenchmarkTrace_Chain measures tracing BFS on a chain of N nodes; every
// frame copies the full node and edge state.
func BenchmarkTrace_Chain(b *testing.B) {
	const N = 200
	edges := make([]core.Edge, 0, N-1)
	for i := 0; i < N-1; i++ {
		edges = append(edges, core.Edge{Source: i, Target: i + 1, Weight: 1})
	}
	g := core.MustGraph(core.Sequential(N), edges)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bfs.Trace(g, 0)
	}
}
