package render

import "github.com/mattn/go-runewidth"

// cellWidth is the display width of one pretty cell.
const cellWidth = 2

// DefaultSymbols is the pretty glyph table. Glyphs missing from it render as
// themselves, padded to the cell width.
func DefaultSymbols() map[rune]string {
	return map[rune]string{
		'#': "⬛",
		'.': "  ",
		'O': "🤖",
		'T': "🥇",
		'x': "👣",
		'>': "➡️",
		'<': "⬅️",
		'^': "⬆️",
		'v': "⬇️",
		'@': "@️",
	}
}

// symbol returns the pretty form of glyph, padded to cellWidth columns.
func symbol(table map[rune]string, glyph rune) string {
	s, ok := table[glyph]
	if !ok {
		s = string(glyph)
	}
	return runewidth.FillRight(s, cellWidth)
}
