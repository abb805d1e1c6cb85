package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zgrid/coord"
)

// TestDirection_AliasFamilies verifies every alias family resolves to the same vector.
func TestDirection_AliasFamilies(t *testing.T) {
	families := map[coord.Pos][]string{
		coord.Up:    {"^", "up", "UP", "U", "N", "north"},
		coord.Right: {">", "right", "RIGHT", "R", "E", "east"},
		coord.Down:  {"v", "down", "DOWN", "D", "S", "south"},
		coord.Left:  {"<", "left", "LEFT", "L", "W", "west"},
	}
	for want, names := range families {
		for _, name := range names {
			got, err := coord.Direction(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, "alias %q", name)
		}
	}
}

// TestDirection_Diagonals covers the four diagonal vectors.
func TestDirection_Diagonals(t *testing.T) {
	cases := map[string]coord.Pos{
		"NE": coord.UpRight, "se": coord.DownRight, "DL": coord.DownLeft, "up-left": coord.UpLeft,
	}
	for name, want := range cases {
		got, err := coord.Direction(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

// TestDirection_Unknown rejects unknown aliases.
func TestDirection_Unknown(t *testing.T) {
	_, err := coord.Direction("sideways")
	assert.ErrorIs(t, err, coord.ErrUnknownDirection)
	assert.False(t, coord.IsDirection("x"))
	assert.True(t, coord.IsDirection("^"))
}

// TestDirectionOf accepts runes, raw vectors and complex units.
func TestDirectionOf(t *testing.T) {
	got, err := coord.DirectionOf('^')
	require.NoError(t, err)
	assert.Equal(t, coord.Up, got)

	got, err = coord.DirectionOf(complex(0, 1))
	require.NoError(t, err)
	assert.Equal(t, coord.Down, got)

	got, err = coord.DirectionOf(coord.P(-1, -1))
	require.NoError(t, err)
	assert.Equal(t, coord.UpLeft, got)

	_, err = coord.DirectionOf(coord.P(2, 0))
	assert.ErrorIs(t, err, coord.ErrUnknownDirection)
}

// TestNamedAliases checks the exported variable aliases share values.
func TestNamedAliases(t *testing.T) {
	assert.Equal(t, coord.Up, coord.N)
	assert.Equal(t, coord.North, coord.U)
	assert.Equal(t, coord.East, coord.R)
	assert.Equal(t, coord.South, coord.D)
	assert.Equal(t, coord.West, coord.L)
	assert.Equal(t, [4]coord.Pos{coord.Up, coord.Right, coord.Down, coord.Left}, coord.Cardinal)
}

// TestNear checks the fixed neighbour orders.
func TestNear(t *testing.T) {
	o := coord.Origin
	assert.Equal(t, []coord.Pos{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, coord.Near4(o))
	assert.Equal(t, []coord.Pos{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}, coord.Near8(o))
}
