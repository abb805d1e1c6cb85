// Package render draws a set of grid cells for a human.
//
// Text writes a fixed layout to any io.Writer:
//
//	(blank line)
//	    0 ⬛⬛  ⬛
//	    1   ⬛⬛⬛
//	      0  1  3
//	(blank line)
//
// Each row starts with a 6-column gutter holding the right-aligned row index.
// Each column is one display cell wide in plain mode and two in pretty mode,
// where glyphs are swapped for wider symbols and padded with go-runewidth.
// The footer merges the first, middle and last column indices, left-, centre-
// and right-aligned, into one line.
//
// Screen paints the same cells into a tcell.Screen for interactive viewing.
package render
