package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zgrid/bfs"
	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/core"
)

// lattice builds a w×h fully connected 4-neighbour grid graph.
func lattice(t testing.TB, w, h int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.AddVertex(coord.P(x, y), '#')
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				require.NoError(t, g.AddEdge(coord.P(x, y), coord.P(x+1, y)))
			}
			if y+1 < h {
				require.NoError(t, g.AddEdge(coord.P(x, y), coord.P(x, y+1)))
			}
		}
	}
	return g
}

// row builds a path graph along row 0 with n vertices.
func row(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for x := 0; x < n; x++ {
		g.AddVertex(coord.P(x, 0), '#')
		if x > 0 {
			require.NoError(t, g.AddEdge(coord.P(x-1, 0), coord.P(x, 0)))
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, coord.Origin)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, coord.Origin)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex(coord.Origin, '#')
	_, err = bfs.BFS(g, coord.Origin, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_LatticeDepths checks layered depths and row-major visit order.
func TestBFS_LatticeDepths(t *testing.T) {
	g := lattice(t, 3, 3)
	res, err := bfs.BFS(g, coord.P(1, 1))
	require.NoError(t, err)

	assert.Len(t, res.Order, 9)
	assert.Equal(t, coord.P(1, 1), res.Order[0])
	assert.Equal(t, []coord.Pos{{1, 0}, {0, 1}, {2, 1}, {1, 2}}, res.Order[1:5])
	for p, d := range res.Depth {
		assert.Equal(t, p.Manhattan(coord.P(1, 1)), d, "depth of %v", p)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := row(t, 3)
	res, err := bfs.BFS(g, coord.Origin, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []coord.Pos{{0, 0}, {1, 0}}, res.Order)

	res, err = bfs.BFS(g, coord.Origin, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
}

// TestBFS_TargetStopsEarly ends the visit sequence at the target.
func TestBFS_TargetStopsEarly(t *testing.T) {
	g := row(t, 5)
	res, err := bfs.BFS(g, coord.Origin, bfs.WithTarget(coord.P(2, 0)))
	require.NoError(t, err)
	assert.Equal(t, []coord.Pos{{0, 0}, {1, 0}, {2, 0}}, res.Order)
}

// TestBFS_FilterAndHook covers neighbour filtering and hook aborts.
func TestBFS_FilterAndHook(t *testing.T) {
	g := row(t, 3)
	res, err := bfs.BFS(g, coord.Origin, bfs.WithFilterNeighbor(func(curr, nbr coord.Pos) bool {
		return nbr != coord.P(2, 0)
	}))
	require.NoError(t, err)
	assert.Equal(t, []coord.Pos{{0, 0}, {1, 0}}, res.Order)

	halt := errors.New("halt")
	_, err = bfs.BFS(g, coord.Origin, bfs.WithOnVisit(func(id coord.Pos, _ int) error {
		if id == coord.P(1, 0) {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := row(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, coord.Origin, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestShortestPath covers success, disconnection and missing endpoints.
func TestShortestPath(t *testing.T) {
	g := row(t, 3)
	path, err := bfs.ShortestPath(g, coord.P(0, 0), coord.P(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []coord.Pos{{0, 0}, {1, 0}, {2, 0}}, path)

	n, err := bfs.ShortestPathLength(g, coord.P(0, 0), coord.P(2, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = bfs.ShortestPathLength(g, coord.P(1, 0), coord.P(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, g.RemoveVertex(coord.P(1, 0)))
	_, err = bfs.ShortestPath(g, coord.P(0, 0), coord.P(2, 0))
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	_, err = bfs.ShortestPath(g, coord.P(0, 0), coord.P(1, 0))
	assert.ErrorIs(t, err, bfs.ErrTargetNotFound)
	_, err = bfs.ShortestPath(g, coord.P(1, 0), coord.P(0, 0))
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestResult_PathTo reconstructs paths from the parent map.
func TestResult_PathTo(t *testing.T) {
	g := lattice(t, 2, 2)
	res, err := bfs.BFS(g, coord.Origin)
	require.NoError(t, err)

	path, err := res.PathTo(coord.P(1, 1))
	require.NoError(t, err)
	// (1,0) precedes (0,1) in row-major order, so it is discovered first.
	assert.Equal(t, []coord.Pos{{0, 0}, {1, 0}, {1, 1}}, path)

	_, err = res.PathTo(coord.P(5, 5))
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}
