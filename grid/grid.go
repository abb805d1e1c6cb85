package grid

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/zgrid/cells"
	"github.com/katalvlaran/zgrid/coord"
)

// Grid is a sparse mapping from position to glyph with distinguished on and off glyphs.
type Grid struct {
	store cells.Store[rune]
	lazy  bool
	on    rune
	off   rune
}

func newGrid(store cells.Store[rune], lazy bool, opts []Option) *Grid {
	g := &Grid{store: store, lazy: lazy, on: DefaultOn, off: DefaultOff}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New returns an empty, writable grid.
func New(opts ...Option) *Grid {
	return newGrid(cells.NewOrdered[rune](), false, opts)
}

// Parse builds a grid from a text literal: line index is the row and rune
// offset is the column. Lines end at "\r\n" or at any single line-break rune
// ("\n", "\r", "\v", "\f", "\x1c", "\x1d", "\x1e", "\u0085", "\u2028",
// "\u2029"); nothing is trimmed, so spaces become glyphs too.
func Parse(text string, opts ...Option) *Grid {
	m := cells.NewOrdered[rune]()
	for y, line := range splitLines(text) {
		for x, r := range []rune(line) {
			m.Set(coord.P(x, y), r)
		}
	}
	return newGrid(m, false, opts)
}

// isLineBreak reports whether r ends a line on its own.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// splitLines splits on line breaks; a final break does not start a new line.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexFunc(text, isLineBreak)
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		if strings.HasPrefix(text[i:], "\r\n") {
			text = text[i+2:]
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		text = text[i+size:]
	}
	return lines
}

// FromFunc returns a lazy grid whose cells are computed by fn on first access
// and cached. Len and iteration see only cells computed or set so far.
func FromFunc(fn func(coord.Pos) rune, opts ...Option) *Grid {
	return newGrid(cells.NewLazy(fn), true, opts)
}

// FromFallibleFunc is FromFunc for a cell function that can fail.
// A failed computation leaves the cell unset and surfaces the error.
func FromFallibleFunc(fn func(coord.Pos) (rune, error), opts ...Option) *Grid {
	return newGrid(cells.NewFallibleLazy(fn), true, opts)
}

// FromCells adopts m as the grid's storage without copying.
// Later changes through either the grid or m are visible to both.
func FromCells(m *cells.Ordered[rune], opts ...Option) *Grid {
	return newGrid(m, false, opts)
}

// On returns the on glyph.
func (g *Grid) On() rune { return g.on }

// Off returns the off glyph.
func (g *Grid) Off() rune { return g.off }

// Lazy reports whether missing cells are computed on access.
func (g *Grid) Lazy() bool { return g.lazy }

// At returns the glyph at p. On a lazy grid a missing cell is computed and
// stored; otherwise an absent cell yields ErrNotFound.
func (g *Grid) At(p coord.Pos) (rune, error) {
	v, err := g.store.Lookup(p)
	if err != nil {
		if errors.Is(err, cells.ErrNotFound) {
			return 0, fmt.Errorf("%w: %v", ErrNotFound, p)
		}
		return 0, err
	}
	return v, nil
}

// Lookup is At for an untyped key such as a complex128.
// Keys that are not integral positions fail with ErrUnsupportedKey.
func (g *Grid) Lookup(key any) (rune, error) {
	if lz, ok := g.store.(*cells.Lazy[rune]); ok {
		return lz.LookupAny(key)
	}
	p, err := coord.FromAny(key)
	if err != nil {
		return 0, err
	}
	return g.At(p)
}

// Get returns the stored glyph at p, or def if p holds nothing. It never computes.
func (g *Grid) Get(p coord.Pos, def rune) rune {
	if v, ok := g.store.Peek(p); ok {
		return v
	}
	return def
}

// Peek returns the stored glyph at p without computing it.
func (g *Grid) Peek(p coord.Pos) (rune, bool) {
	return g.store.Peek(p)
}

// Set stores glyph at p.
func (g *Grid) Set(p coord.Pos, glyph rune) {
	g.store.Set(p, glyph)
}

// Delete removes the cell at p, or returns ErrNotFound if it is absent.
func (g *Grid) Delete(p coord.Pos) error {
	if !g.store.Delete(p) {
		return fmt.Errorf("%w: %v", ErrNotFound, p)
	}
	return nil
}

// Has reports whether p holds a stored glyph. It never computes.
func (g *Grid) Has(p coord.Pos) bool {
	return g.store.Has(p)
}

// Len returns the number of stored cells.
func (g *Grid) Len() int {
	return g.store.Len()
}

// All iterates stored cells in insertion order.
func (g *Grid) All() iter.Seq2[coord.Pos, rune] {
	return g.store.All()
}

// Positions returns the stored positions in insertion order.
func (g *Grid) Positions() []coord.Pos {
	out := make([]coord.Pos, 0, g.store.Len())
	for p := range g.store.All() {
		out = append(out, p)
	}
	return out
}

// Cells returns a snapshot of the stored cells.
func (g *Grid) Cells() map[coord.Pos]rune {
	out := make(map[coord.Pos]rune, g.store.Len())
	for p, v := range g.store.All() {
		out[p] = v
	}
	return out
}
