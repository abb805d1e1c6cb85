package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/zgrid/bfs"
	"github.com/katalvlaran/zgrid/coord"
)

// ConnectedComponents finds all contiguous regions ("islands") of node cells.
// Components are ordered by their row-major first cell; cells inside a
// component are listed in BFS order from that first cell.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func (g *Graph) ConnectedComponents() [][]coord.Pos {
	seen := make(map[coord.Pos]bool, g.core.VertexCount())
	var comps [][]coord.Pos

	for _, p := range g.core.Vertices() {
		if seen[p] {
			continue
		}
		// p is a vertex, so BFS cannot fail
		res, _ := bfs.BFS(g.core, p)
		for _, q := range res.Order {
			seen[q] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// Component returns the island containing p, or ErrNodeNotFound.
func (g *Graph) Component(p coord.Pos) ([]coord.Pos, error) {
	res, err := bfs.BFS(g.core, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNodeNotFound, err)
	}
	return res.Order, nil
}
