package render_test

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zgrid/coord"
	"github.com/katalvlaran/zgrid/render"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 5)
	t.Cleanup(screen.Fini)
	return screen
}

func TestScreenPaintsCells(t *testing.T) {
	screen := newScreen(t)
	cells := map[coord.Pos]rune{
		coord.P(5, 5): '#',
		coord.P(6, 6): 'O',
	}
	opts := render.ScreenOptions{Offset: coord.P(1, 2), Styles: render.DefaultStyles()}
	require.NoError(t, render.Screen(screen, cells, opts))

	r, _, style, _ := screen.GetContent(1, 2)
	assert.Equal(t, '#', r)
	assert.Equal(t, render.DefaultStyles()['#'], style)

	r, _, _, _ = screen.GetContent(2, 3)
	assert.Equal(t, 'O', r)

	r, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, ' ', r)
}

func TestScreenClipsOutside(t *testing.T) {
	screen := newScreen(t)
	cells := map[coord.Pos]rune{
		coord.P(0, 0):  'a',
		coord.P(50, 0): 'b',
		coord.P(0, 50): 'c',
	}
	require.NoError(t, render.Screen(screen, cells, render.ScreenOptions{Clear: true}))

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'a', r)
	assert.Equal(t, tcell.StyleDefault, style)
}

func TestScreenEmpty(t *testing.T) {
	screen := newScreen(t)
	err := render.Screen(screen, map[coord.Pos]rune{}, render.ScreenOptions{})
	assert.True(t, errors.Is(err, render.ErrNothingToDraw))
}
