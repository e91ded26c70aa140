package atlas

import "errors"

// Sentinel errors for the atlas package.
var (
	// ErrAtlasFull is returned when a rectangle cannot be placed even
	// after growing the atlas to its maximum height.
	ErrAtlasFull = errors.New("atlas: texture atlas is full")

	// ErrZeroSize is returned when allocating a rectangle with zero
	// width or height.
	ErrZeroSize = errors.New("atlas: zero-sized allocation")
)
