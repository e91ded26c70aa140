// Package selection turns pointer gestures into character ranges over
// laid-out text: word/line boundary classification, the click/drag state
// machine, and cursor utilities.
//
// The line-wrapped layout itself ("galley") is an external collaborator,
// consumed through the Galley interface and never constructed here.
package selection

import (
	"github.com/glyphkit/glyphkit"
	"github.com/glyphkit/glyphkit/cursor"
)

// Galley is the contract of a pre-computed, line-wrapped text layout.
// It converts between the cursor representations and reports cursor
// geometry.
type Galley interface {
	// FromPCursor resolves a paragraph-relative position to a full
	// cursor. Positions past the end of a paragraph or the text clamp
	// rather than fail.
	FromPCursor(p cursor.PCursor) cursor.Cursor

	// FromCCursor resolves a flat character offset to a full cursor,
	// clamping out-of-range offsets.
	FromCCursor(c cursor.CCursor) cursor.Cursor

	// PosFromCursor returns the layout-space rectangle of a cursor
	// position: a zero-width slot at the glyph's leading edge, one row
	// tall (zero-height for an empty layout).
	PosFromCursor(c cursor.Cursor) glyphkit.Rect

	// Text returns the laid-out text.
	Text() string
}
