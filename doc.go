// Package zgrid is a toolkit for small two-dimensional puzzle grids: parse a
// block of text, look around a cell, search the open cells, and draw the
// result back to a terminal.
//
// What is in the box?
//
//   - Positions & directions: integer (column, row) vectors, 90° turns,
//     eight compass directions reachable by arrow, word or letter aliases
//   - Sparse cells: insertion-ordered storage, or cells computed on demand
//     from a function of position and cached
//   - Grid: neighbours, search by glyph, translation, on-cell counting,
//     bounding box, dense array and gonum matrix export
//   - Graphs: "on" cells joined to their right and lower neighbours, with
//     shortest paths, connected components and island bridging
//   - Search: grid-native breadth-first depth maps with target and depth limits
//   - Rendering: numbered text output with wide symbols, or a tcell screen
//
// Packages:
//
//	coord/      Pos, directions, Range
//	cells/      Ordered and Lazy position maps
//	grid/       the Grid type and everything built on it
//	core/       undirected position graph with thread-safe primitives
//	bfs/        breadth-first search and shortest paths over core graphs
//	gridgraph/  node graph of a grid, components and bridges
//	render/     text and terminal renderers
//	cmd/zgrid   command-line front end
//
// Quick example:
//
//	g := grid.Parse("###\n..#\n###")
//	n, _ := g.PathLength(coord.P(0, 2), coord.P(0, 0)) // 6
//	g.DrawPath(os.Stdout, coord.P(0, 2), coord.P(0, 0), 'x')
//
//	go get github.com/katalvlaran/zgrid
package zgrid
