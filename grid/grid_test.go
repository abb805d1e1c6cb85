package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/zgrid/cells"
	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/grid"
)

// GridSuite covers construction and cell access.
type GridSuite struct {
	suite.Suite
	g *grid.Grid
}

func (s *GridSuite) SetupTest() {
	s.g = grid.Parse("abc\ndef")
}

func (s *GridSuite) TestParseArrayRoundTrip() {
	rows, err := s.g.Array()
	s.Require().NoError(err)
	want := [][]rune{[]rune("abc"), []rune("def")}
	if diff := cmp.Diff(want, rows); diff != "" {
		s.T().Errorf("Array mismatch (-want +got):\n%s", diff)
	}

	text, err := s.g.Text()
	s.Require().NoError(err)
	s.Equal("abc\ndef", text)
}

func (s *GridSuite) TestParseLayout() {
	r, err := s.g.At(coord.P(2, 1))
	s.Require().NoError(err)
	s.Equal('f', r)
	s.Equal(6, s.g.Len())
	s.Equal(grid.DefaultOn, s.g.On())
	s.Equal(grid.DefaultOff, s.g.Off())
	s.False(s.g.Lazy())
}

func (s *GridSuite) TestParseLineBreaks() {
	g := grid.Parse("a\r\nb\rc\n\n d \n")
	want := []coord.Pos{coord.P(0, 0), coord.P(0, 1), coord.P(0, 2), coord.P(0, 4), coord.P(1, 4), coord.P(2, 4)}
	if diff := cmp.Diff(want, g.Positions()); diff != "" {
		s.T().Errorf("Positions mismatch (-want +got):\n%s", diff)
	}
	s.Equal(' ', g.Get(coord.P(0, 4), 0))

	s.Zero(grid.Parse("").Len())
}

func (s *GridSuite) TestParseUnicodeLineBreaks() {
	g := grid.Parse("a\vb\fc\x1cd\u0085e\u2028f\u2029g\x1eh")
	s.Equal(8, g.Len())
	for y, want := range "abcdefgh" {
		s.Equal(want, g.Get(coord.P(0, y), 0), "row %d", y)
	}
	// "\r\n" is one break, the following "\n" starts an empty row
	s.Equal([]coord.Pos{coord.P(0, 2)}, grid.Parse("x\r\n\ny").FindAll('y'))
}

func (s *GridSuite) TestAbsentVersusOff() {
	g := grid.Parse("#.")
	r, err := g.At(coord.P(1, 0))
	s.Require().NoError(err)
	s.Equal('.', r)

	_, err = g.At(coord.P(2, 0))
	s.ErrorIs(err, grid.ErrNotFound)
	s.False(g.Has(coord.P(2, 0)))
	s.Equal('?', g.Get(coord.P(2, 0), '?'))
}

func (s *GridSuite) TestLookupKeys() {
	r, err := s.g.Lookup(complex(1, 1))
	s.Require().NoError(err)
	s.Equal('e', r)

	r, err = s.g.Lookup(2)
	s.Require().NoError(err)
	s.Equal('c', r)

	_, err = s.g.Lookup("b")
	s.ErrorIs(err, grid.ErrUnsupportedKey)
	_, err = s.g.Lookup(0.5)
	s.ErrorIs(err, grid.ErrUnsupportedKey)
	_, err = s.g.Lookup(complex(5, 5))
	s.ErrorIs(err, grid.ErrNotFound)
}

func (s *GridSuite) TestSetDelete() {
	s.g.Set(coord.P(0, 0), 'z')
	s.g.Set(coord.P(9, 9), 'y')
	s.Equal('z', s.g.Get(coord.P(0, 0), 0))
	s.Equal(7, s.g.Len())
	// overwrite keeps insertion position
	s.Equal(coord.P(0, 0), s.g.Positions()[0])

	s.Require().NoError(s.g.Delete(coord.P(9, 9)))
	s.ErrorIs(s.g.Delete(coord.P(9, 9)), grid.ErrNotFound)
	s.Equal(6, s.g.Len())
}

func (s *GridSuite) TestFromCellsAdopts() {
	m := cells.NewOrdered[rune]()
	g := grid.FromCells(m)
	g.Set(coord.P(1, 1), '#')
	s.True(m.Has(coord.P(1, 1)))

	m.Set(coord.P(2, 2), '#')
	s.True(g.Has(coord.P(2, 2)))
	s.Equal(2, g.CountOn())
}

func (s *GridSuite) TestLazyComputesOnce() {
	calls := 0
	g := grid.FromFunc(func(p coord.Pos) rune {
		calls++
		if (p.X+p.Y)%2 == 0 {
			return '#'
		}
		return '.'
	})
	s.True(g.Lazy())
	s.Zero(g.Len())

	first, err := g.At(coord.P(3, 1))
	s.Require().NoError(err)
	second, err := g.At(coord.P(3, 1))
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal('#', first)
	s.Equal(1, calls)
	s.Equal(1, g.Len())

	// Has, Get and Peek never compute.
	s.False(g.Has(coord.P(0, 1)))
	s.Equal('?', g.Get(coord.P(0, 1), '?'))
	_, ok := g.Peek(coord.P(0, 1))
	s.False(ok)
	s.Equal(1, calls)

	_, err = g.Lookup("nope")
	s.ErrorIs(err, grid.ErrUnsupportedKey)
	s.Equal(1, calls)
}

func (s *GridSuite) TestLazyFailure() {
	boom := errors.New("boom")
	g := grid.FromFallibleFunc(func(p coord.Pos) (rune, error) {
		if p.X < 0 {
			return 0, boom
		}
		return '#', nil
	})
	_, err := g.At(coord.P(-1, 0))
	s.ErrorIs(err, boom)
	s.ErrorIs(err, cells.ErrCompute)
	s.False(g.Has(coord.P(-1, 0)))
}

func (s *GridSuite) TestOptions() {
	g := grid.Parse("x x\n  x", grid.WithOn('x'), grid.WithOff('-'))
	s.Equal(3, g.CountOn())
	g.Set(coord.P(5, 0), 'x')
	text, err := g.Text()
	s.Require().NoError(err)
	s.Equal("x x--x\n  x---", text)
}

func (s *GridSuite) TestCellsSnapshot() {
	snap := s.g.Cells()
	s.Len(snap, 6)
	snap[coord.P(0, 0)] = 'Q'
	s.Equal('a', s.g.Get(coord.P(0, 0), 0))

	n := 0
	for p, r := range s.g.All() {
		s.Equal(s.g.Get(p, 0), r)
		n++
	}
	s.Equal(6, n)
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}
