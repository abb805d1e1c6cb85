package grid

import (
	"fmt"

	"github.com/katalvlaran/zgrid/coord"
)

const (
	// DefaultOn is the default on glyph.
	DefaultOn = '#'
	// DefaultOff is the default off glyph.
	DefaultOff = '.'
)

// Option configures a Grid at construction.
type Option func(*Grid)

// WithOn sets the on glyph.
func WithOn(glyph rune) Option {
	return func(g *Grid) { g.on = glyph }
}

// WithOff sets the off glyph.
func WithOff(glyph rune) Option {
	return func(g *Grid) { g.off = glyph }
}

// SearchOption configures Grid.BFS.
// An invalid option is recorded and surfaced as ErrOptionViolation by BFS.
type SearchOption func(*searchConfig)

type searchConfig struct {
	start     coord.Pos
	target    coord.Pos
	hasTarget bool
	maxDepth  int
	hasMax    bool
	err       error
}

// WithStart sets the start position. The default is the origin.
func WithStart(p coord.Pos) SearchOption {
	return func(c *searchConfig) { c.start = p }
}

// WithTarget stops the search once p has been reached.
func WithTarget(p coord.Pos) SearchOption {
	return func(c *searchConfig) {
		c.target = p
		c.hasTarget = true
	}
}

// WithMaxDepth stops the search before any cell deeper than d.
// Zero is a valid limit that reaches only the start cell.
func WithMaxDepth(d int) SearchOption {
	return func(c *searchConfig) {
		if d < 0 {
			c.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		c.maxDepth = d
		c.hasMax = true
	}
}

// DrawOption configures Grid.Draw and Grid.DrawScreen.
type DrawOption func(*drawConfig)

type drawConfig struct {
	overlay map[coord.Pos]rune
	window  []coord.Pos
	clear   bool
	plain   bool
	symbols map[rune]string
	err     error
}

// WithOverlay draws the whole grid with overlay glyphs taking precedence.
// An overlay replaces any window.
func WithOverlay(overlay map[coord.Pos]rune) DrawOption {
	return func(c *drawConfig) { c.overlay = overlay }
}

// WithWindow draws only the listed positions. Positions with no cell are skipped.
func WithWindow(ps ...coord.Pos) DrawOption {
	return func(c *drawConfig) { c.window = ps }
}

// WithWindowCorner draws the rectangle from the origin to corner inclusive.
func WithWindowCorner(corner coord.Pos) DrawOption {
	return func(c *drawConfig) {
		ps, err := coord.Range(corner.Add(coord.P(1, 1)))
		if err != nil {
			c.err = err
			return
		}
		c.window = ps
	}
}

// WithClear resets the terminal before drawing.
func WithClear() DrawOption {
	return func(c *drawConfig) { c.clear = true }
}

// WithPlain draws raw glyphs one column wide instead of pretty symbols.
func WithPlain() DrawOption {
	return func(c *drawConfig) { c.plain = true }
}

// WithSymbols overrides entries of the pretty symbol table.
func WithSymbols(symbols map[rune]string) DrawOption {
	return func(c *drawConfig) { c.symbols = symbols }
}
