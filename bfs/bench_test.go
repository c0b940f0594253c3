package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/regmap/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := adjGraph{}
	for i := 0; i < N; i++ {
		g.addEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS[string](g, "v0")
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1

	g := adjGraph{}
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		g.addEdge(p, fmt.Sprintf("%d", 2*i))
		g.addEdge(p, fmt.Sprintf("%d", 2*i+1))
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*nodeCount - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS[string](g, "1")
	}
}
