package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/zgrid/coord"
)

// ScreenOptions control Screen output.
type ScreenOptions struct {
	// Offset is the screen cell where the top-left of the bounding box lands.
	Offset coord.Pos
	// Clear wipes the screen before painting.
	Clear bool
	// Styles maps glyphs to styles; other glyphs use tcell.StyleDefault.
	Styles map[rune]tcell.Style
}

// DefaultStyles highlights on cells and the path overlay glyphs.
func DefaultStyles() map[rune]tcell.Style {
	return map[rune]tcell.Style{
		'#': tcell.StyleDefault.Reverse(true),
		'O': tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		'T': tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		'x': tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

// Screen paints cells into s, one terminal cell per grid cell, and shows it.
// Cells that fall outside the screen are clipped.
func Screen(s tcell.Screen, cells map[coord.Pos]rune, opts ScreenOptions) error {
	lo, _, ok := Bounds(cells)
	if !ok {
		return ErrNothingToDraw
	}
	if opts.Clear {
		s.Clear()
	}
	w, h := s.Size()
	for p, glyph := range cells {
		x := p.X - lo.X + opts.Offset.X
		y := p.Y - lo.Y + opts.Offset.Y
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		style, ok := opts.Styles[glyph]
		if !ok {
			style = tcell.StyleDefault
		}
		s.SetContent(x, y, glyph, nil, style)
	}
	s.Show()

	return nil
}
