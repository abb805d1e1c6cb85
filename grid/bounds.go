package grid

import "github.com/katalvlaran/zgrid/coord"

// extreme returns the stored position that is greatest under better.
func (g *Grid) extreme(better func(a, b coord.Pos) bool) (coord.Pos, error) {
	var best coord.Pos
	first := true
	for p := range g.store.All() {
		if first || better(p, best) {
			best, first = p, false
		}
	}
	if first {
		return coord.Pos{}, ErrEmptyGrid
	}
	return best, nil
}

// TopLeft returns the first stored cell of the top row.
func (g *Grid) TopLeft() (coord.Pos, error) {
	return g.extreme(func(a, b coord.Pos) bool {
		return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
	})
}

// LeftBottom returns the lowest stored cell of the leftmost column.
func (g *Grid) LeftBottom() (coord.Pos, error) {
	return g.extreme(func(a, b coord.Pos) bool {
		return a.X < b.X || (a.X == b.X && a.Y > b.Y)
	})
}

// BottomRight returns the last stored cell of the bottom row.
func (g *Grid) BottomRight() (coord.Pos, error) {
	return g.extreme(func(a, b coord.Pos) bool {
		return a.Y > b.Y || (a.Y == b.Y && a.X > b.X)
	})
}

// RightTop returns the highest stored cell of the rightmost column.
func (g *Grid) RightTop() (coord.Pos, error) {
	return g.extreme(func(a, b coord.Pos) bool {
		return a.X > b.X || (a.X == b.X && a.Y < b.Y)
	})
}

// Width returns the number of columns spanned by stored cells.
func (g *Grid) Width() (int, error) {
	lb, err := g.LeftBottom()
	if err != nil {
		return 0, err
	}
	rt, err := g.RightTop()
	if err != nil {
		return 0, err
	}
	return rt.X - lb.X + 1, nil
}

// Height returns the number of rows spanned by stored cells.
func (g *Grid) Height() (int, error) {
	tl, err := g.TopLeft()
	if err != nil {
		return 0, err
	}
	br, err := g.BottomRight()
	if err != nil {
		return 0, err
	}
	return br.Y - tl.Y + 1, nil
}

// bounds returns the minimum and maximum column and row of the stored cells.
func (g *Grid) bounds() (lo, hi coord.Pos, err error) {
	first := true
	for p := range g.store.All() {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	if first {
		return lo, hi, ErrEmptyGrid
	}
	return lo, hi, nil
}
