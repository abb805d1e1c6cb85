package grid

import (
	"errors"

	"github.com/katalvlaran/zgrid/cells"
	"github.com/katalvlaran/zgrid/coord"
)

// Sentinel errors for grid operations.
var (
	// ErrNotFound indicates an absent cell, or a path query with no answer.
	ErrNotFound = errors.New("grid: position not found")
	// ErrUnsupportedKey indicates a lookup key that is not a position.
	ErrUnsupportedKey = cells.ErrUnsupportedKey
	// ErrInvalidArity indicates a neighbour query with an arity other than 4 or 8.
	ErrInvalidArity = errors.New("grid: arity must be 4 or 8")
	// ErrArgumentCount indicates a window range built from the wrong number of bounds.
	ErrArgumentCount = coord.ErrArgumentCount
	// ErrEmptyGrid indicates a bounding-box query on a grid with no stored cells.
	ErrEmptyGrid = errors.New("grid: grid is empty")
	// ErrInitialGlyphMismatch indicates a search started on a cell that is not on.
	ErrInitialGlyphMismatch = errors.New("grid: start glyph is not the on glyph")
	// ErrOptionViolation indicates an invalid search option.
	ErrOptionViolation = errors.New("grid: invalid option")
)
