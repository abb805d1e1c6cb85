// Package grid is a sparse two-dimensional glyph grid addressed by coord.Pos.
//
// A Grid owns an insertion-ordered mapping from position to rune. Positions
// with no stored glyph are empty, which is distinct from holding the off glyph.
// Two glyphs are distinguished at construction: on (default '#') marks active
// cells for counting, searching and graph building, and off (default '.')
// fills gaps when the grid is exported as a dense array.
//
// Grids are built empty (New), from a text literal (Parse), from a function
// of position (FromFunc, computed lazily and cached on first access), or by
// adopting an existing cells.Ordered map (FromCells).
//
//	g := grid.Parse("#.#\n###")
//	g.Neighbors(coord.P(1, 1), 4) // up, right, down, left
//	g.PathLength(coord.P(2, 0), coord.P(0, 0)) // 4
//
// A Grid is not safe for concurrent use. This includes reads of a lazy grid,
// since a read may store a newly computed cell.
package grid
