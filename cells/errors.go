package cells

import (
	"errors"

	"github.com/katalvlaran/zgrid/coord"
)

var (
	// ErrNotFound indicates a lookup of a position that holds no value.
	ErrNotFound = errors.New("cells: position not found")
	// ErrUnsupportedKey indicates a lookup key that is not a position.
	ErrUnsupportedKey = coord.ErrUnsupportedKey
	// ErrCompute indicates the value function of a Lazy map returned an error.
	ErrCompute = errors.New("cells: value function failed")
)
