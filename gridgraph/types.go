// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/zgrid.
package gridgraph

import (
	"errors"
	"iter"

	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNodeNotFound indicates a path endpoint that is not a graph node.
	ErrNodeNotFound = errors.New("gridgraph: position is not a node")
	// ErrNoPath indicates no path exists between the requested endpoints or components.
	ErrNoPath = errors.New("gridgraph: no path between specified nodes")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)

// CellSource is the read-only view of a grid that Build consumes.
// Peek must not compute missing cells.
type CellSource interface {
	All() iter.Seq2[coord.Pos, rune]
	Peek(p coord.Pos) (rune, bool)
}

// Options selects which glyphs become nodes.
type Options struct {
	// On is the regular node glyph.
	On rune
	// Extra lists additional node glyphs recorded as markers.
	Extra []rune
}

// DefaultOptions returns Options with On='#' and no extra glyphs.
func DefaultOptions() Options {
	return Options{On: '#'}
}

// Graph is the node graph of a grid plus the positions of its marker glyphs.
// It keeps a reference to its CellSource for Bridge.
type Graph struct {
	core    *core.Graph
	src     CellSource
	on      rune
	nodes   map[rune]struct{}
	markers map[rune]coord.Pos
}

// Core exposes the underlying graph for generic algorithms.
func (g *Graph) Core() *core.Graph {
	return g.core
}

// Marker returns the position of an extra glyph, if any cell carried it.
// When several cells share a marker glyph the last one in iteration order wins.
func (g *Graph) Marker(glyph rune) (coord.Pos, bool) {
	p, ok := g.markers[glyph]
	return p, ok
}

// Markers returns a copy of the marker table.
func (g *Graph) Markers() map[rune]coord.Pos {
	out := make(map[rune]coord.Pos, len(g.markers))
	for k, v := range g.markers {
		out[k] = v
	}
	return out
}

// IsNodeGlyph reports whether glyph is On or one of the extra glyphs.
func (g *Graph) IsNodeGlyph(glyph rune) bool {
	_, ok := g.nodes[glyph]
	return ok
}
