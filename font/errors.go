package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when backend font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")
)
