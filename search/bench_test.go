package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// benchmarkFrontier runs Solve on the default 15×30 board with ~20% walls.
func benchmarkFrontier(b *testing.B, f search.Frontier) {
	r := rand.New(rand.NewSource(42))
	g := grid.NewDefault()
	for i := 0; i < g.Len(); i++ {
		if r.Intn(5) == 0 {
			row, col := g.Coordinate(i)
			_ = g.SetWall(row, col, true)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Solve(g, search.WithFrontier(f)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Scan(b *testing.B) { benchmarkFrontier(b, search.FrontierScan) }

func BenchmarkSolve_Heap(b *testing.B) { benchmarkFrontier(b, search.FrontierHeap) }
