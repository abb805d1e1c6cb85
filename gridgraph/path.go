package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zgrid/bfs"
	"github.com/katalvlaran/zgrid/coord"
)

// ShortestPath returns a fewest-steps path of nodes from source to target, inclusive.
// Returns ErrNodeNotFound if either endpoint is not a node and ErrNoPath if they
// are in different components; the bfs sentinel is wrapped as well.
func (g *Graph) ShortestPath(target, source coord.Pos) ([]coord.Pos, error) {
	path, err := bfs.ShortestPath(g.core, source, target)
	if err != nil {
		return nil, translate(err)
	}
	return path, nil
}

// ShortestPathLength returns the number of steps on a shortest path.
func (g *Graph) ShortestPathLength(target, source coord.Pos) (int, error) {
	n, err := bfs.ShortestPathLength(g.core, source, target)
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// translate maps bfs failures onto gridgraph sentinels.
func translate(err error) error {
	switch {
	case errors.Is(err, bfs.ErrStartVertexNotFound), errors.Is(err, bfs.ErrTargetNotFound):
		return fmt.Errorf("%w: %w", ErrNodeNotFound, err)
	case errors.Is(err, bfs.ErrNoPath):
		return fmt.Errorf("%w: %w", ErrNoPath, err)
	}
	return err
}
