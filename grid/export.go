package grid

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/zgrid/coord"
)

// Array returns the stored cells as a dense row-major array covering their
// bounding box. Row 0 and column 0 are the minimum stored row and column;
// gaps hold the off glyph. Returns ErrEmptyGrid for an empty grid.
func (g *Grid) Array() ([][]rune, error) {
	lo, hi, err := g.bounds()
	if err != nil {
		return nil, err
	}
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = make([]rune, w)
		for x := range rows[y] {
			rows[y][x] = g.off
		}
	}
	for p, v := range g.store.All() {
		rows[p.Y-lo.Y][p.X-lo.X] = v
	}
	return rows, nil
}

// Text returns Array joined into lines. For a rectangular grid built by Parse
// it reproduces the input without a trailing newline.
func (g *Grid) Text() (string, error) {
	rows, err := g.Array()
	if err != nil {
		return "", err
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n"), nil
}

// Dense returns the grid as a numeric matrix laid out like Array, with each
// glyph mapped through value. A nil value maps on to 1 and everything else to 0.
func (g *Grid) Dense(value func(rune) float64) (*mat.Dense, error) {
	rows, err := g.Array()
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = func(r rune) float64 {
			if r == g.on {
				return 1
			}
			return 0
		}
	}
	m := mat.NewDense(len(rows), len(rows[0]), nil)
	for y, row := range rows {
		for x, r := range row {
			m.Set(y, x, value(r))
		}
	}
	return m, nil
}

// Origin returns the position that Array places at row 0, column 0.
func (g *Grid) Origin() (coord.Pos, error) {
	lo, _, err := g.bounds()
	return lo, err
}
