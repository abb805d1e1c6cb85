package coord

import "fmt"

// unitStep is the default Range step: one column right, one row down.
var unitStep = Pos{X: 1, Y: 1}

// Range returns the positions of the half-open rectangle [start, stop) taken
// every step, rows outer and columns inner.
//
//	Range(stop)              start = Origin, step = (1,1)
//	Range(start, stop)       step = (1,1)
//	Range(start, stop, step)
//
// Negative step components walk downwards like a counting loop would.
// Returns ErrArgumentCount for 0 or more than 3 arguments and ErrZeroStep when
// either step component is zero.
func Range(args ...Pos) ([]Pos, error) {
	var start, stop, step Pos
	switch len(args) {
	case 1:
		stop, step = args[0], unitStep
	case 2:
		start, stop, step = args[0], args[1], unitStep
	case 3:
		start, stop, step = args[0], args[1], args[2]
	default:
		return nil, fmt.Errorf("%w, got %d", ErrArgumentCount, len(args))
	}
	if step.X == 0 || step.Y == 0 {
		return nil, fmt.Errorf("%w: %v", ErrZeroStep, step)
	}

	xs := span(start.X, stop.X, step.X)
	ys := span(start.Y, stop.Y, step.Y)
	out := make([]Pos, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, Pos{X: x, Y: y})
		}
	}

	return out, nil
}

// MustRange is Range for literal arguments known to be valid; it panics otherwise.
func MustRange(args ...Pos) []Pos {
	out, err := Range(args...)
	if err != nil {
		panic(err)
	}
	return out
}

// span lists start, start+step, ... stopping before stop.
func span(start, stop, step int) []int {
	var out []int
	if step > 0 {
		for v := start; v < stop; v += step {
			out = append(out, v)
		}
	} else {
		for v := start; v > stop; v += step {
			out = append(out, v)
		}
	}
	return out
}
