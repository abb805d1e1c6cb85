package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/grid"
)

func square(n int) *grid.Grid {
	line := strings.Repeat("#", n)
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line
	}
	return grid.Parse(strings.Join(lines, "\n"))
}

func BenchmarkBFS_Square(b *testing.B) {
	g := square(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.BFS(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPathLength_Square(b *testing.B) {
	g := square(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.PathLength(coord.P(63, 63), coord.Origin); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkArray_Square(b *testing.B) {
	g := square(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Array(); err != nil {
			b.Fatal(err)
		}
	}
}
