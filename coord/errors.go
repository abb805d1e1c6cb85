package coord

import "errors"

var (
	// ErrArgumentCount indicates Range was called with an unsupported number of arguments.
	ErrArgumentCount = errors.New("coord: range expects 1 to 3 arguments")
	// ErrZeroStep indicates a Range step with a zero column or row component.
	ErrZeroStep = errors.New("coord: range step must not be zero")
	// ErrUnknownDirection indicates a direction alias missing from the lookup table.
	ErrUnknownDirection = errors.New("coord: unknown direction")
	// ErrUnsupportedKey indicates a value that cannot be used as a position.
	ErrUnsupportedKey = errors.New("coord: key is not a position")
)
