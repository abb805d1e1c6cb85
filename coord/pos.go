package coord

import (
	"fmt"
	"math"
)

// Pos is a grid position: X is the column, Y is the row.
// The zero value is the origin.
type Pos struct {
	X, Y int
}

// Origin is the zero position.
var Origin = Pos{}

// P is shorthand for Pos{X: x, Y: y}.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String renders p as "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add translates p by q.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Pos) Sub(q Pos) Pos {
	return Pos{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Pos) Neg() Pos {
	return Pos{X: -p.X, Y: -p.Y}
}

// Scale multiplies both components by k.
func (p Pos) Scale(k int) Pos {
	return Pos{X: p.X * k, Y: p.Y * k}
}

// Mul multiplies p and q as the complex numbers x+yi.
// With a unit q this is a rotation; see TurnRight, TurnLeft, TurnAround.
func (p Pos) Mul(q Pos) Pos {
	return Pos{
		X: p.X*q.X - p.Y*q.Y,
		Y: p.X*q.Y + p.Y*q.X,
	}
}

// Rotate applies one of the turn constants to p.
func (p Pos) Rotate(turn Pos) Pos {
	return p.Mul(turn)
}

// TurnRight rotates p 90° clockwise as drawn on screen (Up becomes Right).
func (p Pos) TurnRight() Pos { return p.Mul(TurnRight) }

// TurnLeft rotates p 90° counter-clockwise as drawn on screen (Up becomes Left).
func (p Pos) TurnLeft() Pos { return p.Mul(TurnLeft) }

// TurnAround reverses p.
func (p Pos) TurnAround() Pos { return p.Mul(TurnAround) }

// Manhattan returns the taxicab distance between p and q.
func (p Pos) Manhattan(q Pos) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Complex returns p as x+yi.
func (p Pos) Complex() complex128 {
	return complex(float64(p.X), float64(p.Y))
}

// FromComplex truncates both parts of z towards zero.
func FromComplex(z complex128) Pos {
	return Pos{X: int(real(z)), Y: int(imag(z))}
}

// Less orders positions row-major: by row, then by column.
func Less(a, b Pos) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// FromAny converts key into a position. Accepted: Pos, complex128, complex64,
// any signed or unsigned integer (a column on row 0), and floats with no
// fractional part. Everything else yields ErrUnsupportedKey.
func FromAny(key any) (Pos, error) {
	switch k := key.(type) {
	case Pos:
		return k, nil
	case complex128:
		return fromComplexExact(k, key)
	case complex64:
		return fromComplexExact(complex128(k), key)
	case int:
		return Pos{X: k}, nil
	case int8:
		return Pos{X: int(k)}, nil
	case int16:
		return Pos{X: int(k)}, nil
	case int32:
		return Pos{X: int(k)}, nil
	case int64:
		return Pos{X: int(k)}, nil
	case uint:
		return Pos{X: int(k)}, nil
	case uint8:
		return Pos{X: int(k)}, nil
	case uint16:
		return Pos{X: int(k)}, nil
	case uint32:
		return Pos{X: int(k)}, nil
	case uint64:
		return Pos{X: int(k)}, nil
	case float64:
		return fromComplexExact(complex(k, 0), key)
	case float32:
		return fromComplexExact(complex(float64(k), 0), key)
	}

	return Pos{}, fmt.Errorf("%w: %#v (%T)", ErrUnsupportedKey, key, key)
}

func fromComplexExact(z complex128, key any) (Pos, error) {
	re, im := real(z), imag(z)
	if math.IsInf(re, 0) || math.IsInf(im, 0) || re != math.Trunc(re) || im != math.Trunc(im) {
		return Pos{}, fmt.Errorf("%w: %v has a fractional part", ErrUnsupportedKey, key)
	}
	return Pos{X: int(re), Y: int(im)}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
