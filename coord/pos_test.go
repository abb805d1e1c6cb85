package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zgrid/coord"
)

// TestPos_Arithmetic checks translation, scaling and complex multiplication.
func TestPos_Arithmetic(t *testing.T) {
	a, b := coord.P(2, 3), coord.P(-1, 4)

	assert.Equal(t, coord.P(1, 7), a.Add(b))
	assert.Equal(t, coord.P(3, -1), a.Sub(b))
	assert.Equal(t, coord.P(-2, -3), a.Neg())
	assert.Equal(t, coord.P(6, 9), a.Scale(3))
	// (2+3i)(-1+4i) = -2 + 8i - 3i + 12i² = -14 + 5i
	assert.Equal(t, coord.P(-14, 5), a.Mul(b))
	assert.Equal(t, 4, a.Manhattan(b))
	assert.Equal(t, 8, a.Manhattan(coord.P(-2, -1)))
	assert.Equal(t, a.Manhattan(b), b.Manhattan(a))
	assert.Equal(t, "(2,3)", a.String())
}

// TestPos_Turns verifies that the rotation constants act as multiplication by i, -i and -1.
func TestPos_Turns(t *testing.T) {
	assert.Equal(t, coord.Right, coord.Up.TurnRight())
	assert.Equal(t, coord.Down, coord.Right.TurnRight())
	assert.Equal(t, coord.Left, coord.Up.TurnLeft())
	assert.Equal(t, coord.Down, coord.Up.TurnAround())
	assert.Equal(t, coord.Up.TurnRight(), coord.Up.Rotate(coord.TurnRight))

	// four right turns return to the starting heading
	h := coord.Left
	for i := 0; i < 4; i++ {
		h = h.Rotate(coord.TurnRight)
	}
	assert.Equal(t, coord.Left, h)
}

// TestPos_Complex round-trips through complex128.
func TestPos_Complex(t *testing.T) {
	p := coord.P(-4, 7)
	assert.Equal(t, complex(-4, 7), p.Complex())
	assert.Equal(t, p, coord.FromComplex(p.Complex()))
}

// TestFromAny covers every accepted key kind and the unsupported ones.
func TestFromAny(t *testing.T) {
	ok := []struct {
		name string
		key  any
		want coord.Pos
	}{
		{"Pos", coord.P(1, 2), coord.P(1, 2)},
		{"complex128", complex(3, -1), coord.P(3, -1)},
		{"complex64", complex64(complex(0, 5)), coord.P(0, 5)},
		{"int", 7, coord.P(7, 0)},
		{"int64", int64(-2), coord.P(-2, 0)},
		{"uint8", uint8(9), coord.P(9, 0)},
		{"float", 4.0, coord.P(4, 0)},
	}
	for _, tc := range ok {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coord.FromAny(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	bad := []any{"up", nil, 1.5, complex(0.5, 1), []int{1, 2}}
	for _, key := range bad {
		_, err := coord.FromAny(key)
		assert.ErrorIs(t, err, coord.ErrUnsupportedKey, "key %#v", key)
	}
}

// TestLess checks row-major ordering.
func TestLess(t *testing.T) {
	assert.True(t, coord.Less(coord.P(5, 0), coord.P(0, 1)))
	assert.True(t, coord.Less(coord.P(0, 1), coord.P(1, 1)))
	assert.False(t, coord.Less(coord.P(1, 1), coord.P(1, 1)))
}
