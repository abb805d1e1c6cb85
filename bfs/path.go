package bfs

import (
	"fmt"

	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/core"
)

// ShortestPath returns a fewest-edges path from source to target, inclusive.
// Among equal-length paths the one found first in row-major neighbour order wins.
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrTargetNotFound, ErrNoPath.
func ShortestPath(g *core.Graph, source, target coord.Pos, opts ...Option) ([]coord.Pos, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}
	opts = append(opts[:len(opts):len(opts)], WithTarget(target))
	res, err := BFS(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(target)
}

// ShortestPathLength returns the number of edges on a shortest path.
func ShortestPathLength(g *core.Graph, source, target coord.Pos, opts ...Option) (int, error) {
	path, err := ShortestPath(g, source, target, opts...)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}
