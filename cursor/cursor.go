// Package cursor defines text cursor positions and selection ranges.
//
// A position in laid-out text has three equivalent representations:
//
//   - CCursor: a flat character offset into the whole text. The simplest
//     form, and the one text editing code usually works with.
//   - RCursor: a row/column position in the line-wrapped layout. Changes
//     whenever the wrap width changes.
//   - PCursor: a paragraph index plus a character offset within that
//     paragraph. Stable across re-wrapping, because word wrap only changes
//     how many rows a paragraph occupies, never its character content.
//
// Cursor bundles all three; the layout ("galley") converts between them.
package cursor

// CCursor is a character-offset cursor: a flat character index into the
// text (not a byte index).
type CCursor struct {
	// Index is the character offset, where 0 is before the first
	// character and len-in-chars is after the last.
	Index int

	// PreferNextRow resolves the ambiguity of a cursor exactly at a line
	// wrap: the same character offset is both the end of one row and the
	// start of the next. True selects the start of the next row.
	// It is a hint only and never affects cursor equality.
	PreferNextRow bool
}

// NewCCursor returns a CCursor at the given character index.
func NewCCursor(index int) CCursor {
	return CCursor{Index: index}
}

// Add returns the cursor moved forward by n characters,
// keeping the row preference.
func (c CCursor) Add(n int) CCursor {
	c.Index += n
	return c
}

// Sub returns the cursor moved backward by n characters,
// keeping the row preference.
func (c CCursor) Sub(n int) CCursor {
	c.Index -= n
	return c
}

// SamePos reports whether two cursors are at the same character offset,
// ignoring the row preference hint.
func (c CCursor) SamePos(other CCursor) bool {
	return c.Index == other.Index
}

// RCursor is a row/column cursor into the line-wrapped layout.
// Valid only for one particular wrap width.
type RCursor struct {
	// Row index into the layout, not the paragraph.
	Row int

	// Column is the character offset within the row.
	Column int
}

// PCursor is a paragraph-relative cursor. Paragraphs are separated by '\n'
// in the text; a paragraph may span several layout rows due to word wrap.
// PCursor positions survive re-wrapping.
type PCursor struct {
	// Paragraph index. A paragraph is a segment between newlines,
	// regardless of how many rows it wraps into.
	Paragraph int

	// Offset is the character offset within the paragraph.
	// It may point past the last character of a row so that moving the
	// cursor down and back up returns to the same column.
	Offset int

	// PreferNextRow resolves end-of-row ambiguity, as in CCursor.
	// Never affects cursor equality.
	PreferNextRow bool
}

// SamePos reports whether two cursors are at the same paragraph position,
// ignoring the row preference hint.
func (p PCursor) SamePos(other PCursor) bool {
	return p.Paragraph == other.Paragraph && p.Offset == other.Offset
}

// Cursor is one position in laid-out text in all three representations.
// Construct it through a galley (the layout), which keeps the three forms
// consistent; the zero value is the start of the text.
type Cursor struct {
	CCursor CCursor
	RCursor RCursor
	PCursor PCursor
}
