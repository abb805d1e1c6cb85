package gridgraph

import (
	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/core"
)

// edgeDirs are the only directions probed for edges.
var edgeDirs = [2]coord.Pos{coord.Right, coord.Down}

// Build constructs the node graph of src.
//
// Steps:
//  1. Every stored cell whose glyph is opts.On or in opts.Extra becomes a vertex.
//  2. A node glyph other than opts.On is recorded as a marker.
//  3. Each node is joined to its right and down neighbours when those are nodes too.
//
// Complexity: O(N) map work plus O(N) edge insertions for N stored cells.
func Build(src CellSource, opts Options) *Graph {
	nodes := make(map[rune]struct{}, 1+len(opts.Extra))
	nodes[opts.On] = struct{}{}
	for _, r := range opts.Extra {
		nodes[r] = struct{}{}
	}
	g := &Graph{
		core:    core.NewGraph(),
		src:     src,
		on:      opts.On,
		nodes:   nodes,
		markers: make(map[rune]coord.Pos),
	}

	var order []coord.Pos
	for p, glyph := range src.All() {
		if !g.IsNodeGlyph(glyph) {
			continue
		}
		g.core.AddVertex(p, glyph)
		if glyph != opts.On {
			g.markers[glyph] = p
		}
		order = append(order, p)
	}
	for _, p := range order {
		for _, d := range edgeDirs {
			q := p.Add(d)
			if glyph, ok := src.Peek(q); ok && g.IsNodeGlyph(glyph) {
				// both endpoints are vertices, so AddEdge cannot fail
				_ = g.core.AddEdge(p, q)
			}
		}
	}

	return g
}
