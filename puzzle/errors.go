package puzzle

import "errors"

// Sentinel errors for puzzle construction and mutation.
var (
	// ErrInvalidDimensions indicates width or height is not a positive integer.
	ErrInvalidDimensions = errors.New("puzzle: width and height must be positive")

	// ErrOutOfRange indicates a tile or edge coordinate lies outside the grid.
	ErrOutOfRange = errors.New("puzzle: coordinate out of range")
)
