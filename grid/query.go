package grid

import (
	"fmt"

	"github.com/katalvlaran/zgrid/coord"
)

// Find returns the first stored position, in insertion order, holding glyph.
// Returns ErrNotFound if no cell matches.
func (g *Grid) Find(glyph rune) (coord.Pos, error) {
	for p, v := range g.store.All() {
		if v == glyph {
			return p, nil
		}
	}
	return coord.Pos{}, fmt.Errorf("%w: no cell holds %q", ErrNotFound, glyph)
}

// FindAll returns every stored position holding glyph, in insertion order.
func (g *Grid) FindAll(glyph rune) []coord.Pos {
	var out []coord.Pos
	for p, v := range g.store.All() {
		if v == glyph {
			out = append(out, p)
		}
	}
	return out
}

// Neighbors returns the positions around p.
// Arity 4 yields up, right, down, left. Arity 8 yields the surrounding ring in
// row-major order: the row above left to right, then left and right, then the
// row below. Any other arity returns ErrInvalidArity.
func (g *Grid) Neighbors(p coord.Pos, arity int) ([]coord.Pos, error) {
	switch arity {
	case 4:
		return coord.Near4(p), nil
	case 8:
		return coord.Near8(p), nil
	}
	return nil, fmt.Errorf("%w: got %d", ErrInvalidArity, arity)
}

// Translate replaces every stored glyph that is a key of table with its value.
// It is a single pass: a replaced glyph is not translated again even if the
// new value is itself a key.
func (g *Grid) Translate(table map[rune]rune) {
	for p, v := range g.store.All() {
		if to, ok := table[v]; ok {
			g.store.Set(p, to)
		}
	}
}

// CountOn returns the number of stored cells holding the on glyph.
func (g *Grid) CountOn() int {
	n := 0
	for _, v := range g.store.All() {
		if v == g.on {
			n++
		}
	}
	return n
}

// CountOnNear returns how many neighbours of p hold the on glyph.
// Neighbours with no stored glyph count as off, even on a lazy grid.
func (g *Grid) CountOnNear(p coord.Pos, arity int) (int, error) {
	near, err := g.Neighbors(p, arity)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, q := range near {
		if v, ok := g.store.Peek(q); ok && v == g.on {
			n++
		}
	}
	return n, nil
}
