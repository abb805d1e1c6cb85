package grid

import (
	"fmt"
	"io"

	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/gridgraph"
)

const (
	// SourceGlyph marks the first cell of a drawn path.
	SourceGlyph = 'O'
	// TargetGlyph marks the last cell of a drawn path.
	TargetGlyph = 'T'
)

// Graph builds the node graph of the stored cells. Cells holding the on glyph
// or one of extra become nodes, joined to node neighbours on their right and
// below. Extra glyphs are recorded as markers.
func (g *Grid) Graph(extra ...rune) *gridgraph.Graph {
	return gridgraph.Build(g, gridgraph.Options{On: g.on, Extra: extra})
}

// Path returns a shortest path of on cells from source to target, inclusive.
// The graph is rebuilt on every call. Returns ErrNotFound, wrapping the
// gridgraph error, if either end is not on or no path exists.
func (g *Grid) Path(target, source coord.Pos) ([]coord.Pos, error) {
	path, err := g.Graph().ShortestPath(target, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return path, nil
}

// PathLength returns the number of steps on a shortest path from source to target.
func (g *Grid) PathLength(target, source coord.Pos) (int, error) {
	n, err := g.Graph().ShortestPathLength(target, source)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return n, nil
}

// PathOverlay returns an overlay marking path with glyph, SourceGlyph at its
// first cell and TargetGlyph at its last.
func PathOverlay(path []coord.Pos, glyph rune) map[coord.Pos]rune {
	overlay := make(map[coord.Pos]rune, len(path))
	for _, p := range path {
		overlay[p] = glyph
	}
	if len(path) > 0 {
		overlay[path[0]] = SourceGlyph
		overlay[path[len(path)-1]] = TargetGlyph
	}
	return overlay
}

// DrawPath draws the whole grid with a shortest path from source to target
// overlaid, see PathOverlay. Any overlay or window in opts is replaced.
func (g *Grid) DrawPath(w io.Writer, target, source coord.Pos, glyph rune, opts ...DrawOption) error {
	path, err := g.Path(target, source)
	if err != nil {
		return err
	}
	opts = append(opts[:len(opts):len(opts)], WithOverlay(PathOverlay(path, glyph)))
	return g.Draw(w, opts...)
}
