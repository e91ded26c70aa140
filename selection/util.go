package selection

import (
	"fmt"

	"github.com/glyphkit/glyphkit"
	"github.com/glyphkit/glyphkit/cursor"
)

// ByteIndexFromCharIndex converts a character offset into a byte offset
// in s. Offsets at or past the end map to len(s).
func ByteIndexFromCharIndex(s string, charIndex int) int {
	ci := 0
	for bi := range s {
		if ci == charIndex {
			return bi
		}
		ci++
	}
	return len(s)
}

// SliceCharRange returns the substring of s covering the character
// offsets [start, end). The end clamps to the string length; start past
// the end yields "". Panics if start > end.
func SliceCharRange(s string, start, end int) string {
	if start > end {
		panic(fmt.Sprintf("selection: invalid char range %d..%d", start, end))
	}
	startByte := ByteIndexFromCharIndex(s, start)
	endByte := ByteIndexFromCharIndex(s, end)
	return s[startByte:endByte]
}

// FindLineStart returns the position just after the closest '\n' at or
// before current, or the start of the text if there is none. This is
// the paragraph start, not the start of a wrapped visual row.
func FindLineStart(text string, current cursor.CCursor) cursor.CCursor {
	chars := []rune(text)
	for i := min(current.Index, len(chars)) - 1; i >= 0; i-- {
		if chars[i] == '\n' {
			return cursor.NewCCursor(i + 1)
		}
	}
	return cursor.NewCCursor(0)
}

// CursorRect returns the screen-space rectangle to paint for a cursor
// in g, with the layout placed at galleyPos. The rectangle is forced to
// at least rowHeight tall, so the caret stays visible in an empty
// layout, and expanded by 1.5 units to make the caret strokeable.
func CursorRect(galleyPos glyphkit.Vec2, g Galley, c cursor.Cursor, rowHeight float32) glyphkit.Rect {
	r := g.PosFromCursor(c).Translate(galleyPos)
	if r.Max.Y < r.Min.Y+rowHeight {
		r.Max.Y = r.Min.Y + rowHeight
	}
	return r.Expand(1.5)
}
