package selection

import (
	"fmt"
	"unicode/utf8"

	"github.com/glyphkit/glyphkit/cursor"
)

// Boundary selects the granularity of pointer-driven selection.
type Boundary int

const (
	// BoundaryCharacter selects single characters; a drag moves the
	// primary cursor freely.
	BoundaryCharacter Boundary = iota
	// BoundaryWord snaps selection ends to word boundaries.
	BoundaryWord
	// BoundaryLine snaps selection ends to line boundaries.
	BoundaryLine
)

func (b Boundary) String() string {
	switch b {
	case BoundaryCharacter:
		return "character"
	case BoundaryWord:
		return "word"
	case BoundaryLine:
		return "line"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// IsWordChar reports whether c belongs to a word: ASCII letters, ASCII
// digits, and underscore. Everything else, including non-ASCII letters,
// separates words.
func IsWordChar(c rune) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}

// isBoundaryChar reports whether c terminates a run at this granularity.
// BoundaryCharacter has no boundary classification; callers handle it
// before asking.
func (b Boundary) isBoundaryChar(c rune) bool {
	switch b {
	case BoundaryWord:
		return !IsWordChar(c)
	case BoundaryLine:
		return c == '\r' || c == '\n'
	default:
		panic("selection: character granularity has no boundary classification")
	}
}

// SelectBoundedAt returns the run at this granularity around cc, for a
// click selecting a whole word or line. The returned range has its
// primary cursor at the right end.
//
// Which directions the run extends depends on the characters on either
// side of the cursor:
//
//   - both sides inside a run: the cursor splits one run, so scan left
//     from one past the cursor and right from that left edge;
//   - only the left side inside: the cursor sits at the run's right
//     edge, so scan left from the cursor and right from that edge;
//   - only the right side inside: the cursor sits at the run's left
//     edge, so scan right from the cursor;
//   - neither side inside: the cursor is between runs and the range
//     spans the separators on both sides.
func (b Boundary) SelectBoundedAt(text string, cc cursor.CCursor) cursor.CCursorRange {
	if cc.Index == 0 {
		return cursor.TwoCCursorRange(cc, b.NextBounded(text, cc))
	}

	chars := []rune(text)
	if cc.Index-1 >= len(chars) {
		// Cursor past the end; nothing before it to classify.
		return cursor.TwoCCursorRange(cc, b.NextBounded(text, cc))
	}
	before := chars[cc.Index-1]
	if cc.Index >= len(chars) {
		// Cursor at the very end; only the left side exists.
		return cursor.TwoCCursorRange(b.PreviousBounded(text, cc), cc)
	}
	after := chars[cc.Index]

	switch {
	case !b.isBoundaryChar(before) && !b.isBoundaryChar(after):
		min := b.PreviousBounded(text, cc.Add(1))
		max := b.NextBounded(text, min)
		return cursor.TwoCCursorRange(min, max)
	case !b.isBoundaryChar(before):
		min := b.PreviousBounded(text, cc)
		max := b.NextBounded(text, min)
		return cursor.TwoCCursorRange(min, max)
	case !b.isBoundaryChar(after):
		max := b.NextBounded(text, cc)
		return cursor.TwoCCursorRange(cc, max)
	default:
		min := b.PreviousBounded(text, cc)
		max := b.NextBounded(text, cc)
		return cursor.TwoCCursorRange(min, max)
	}
}

// NextBounded returns the next boundary position at or after cc.
func (b Boundary) NextBounded(text string, cc cursor.CCursor) cursor.CCursor {
	return cursor.CCursor{Index: b.nextBoundaryCharIndex([]rune(text), cc.Index)}
}

// PreviousBounded returns the previous boundary position at or before
// cc. The result prefers the next row, so a cursor landing at a wrap
// point renders at the start of the following line.
func (b Boundary) PreviousBounded(text string, cc cursor.CCursor) cursor.CCursor {
	numChars := utf8.RuneCountInString(text)
	reversed := reverseRunes(text)
	start := numChars - min(cc.Index, numChars)
	return cursor.CCursor{
		Index:         numChars - b.nextBoundaryCharIndex(reversed, start),
		PreferNextRow: true,
	}
}

// nextBoundaryCharIndex scans forward from index for the end of the
// current run. The first character is always consumed; the scan then
// continues while characters classify the same as the character that
// followed it. A lone character therefore always yields index+1, which
// is what makes repeated word-jumps progress one word at a time.
func (b Boundary) nextBoundaryCharIndex(chars []rune, index int) int {
	if index >= len(chars) {
		return index
	}
	index++
	if index >= len(chars) {
		return index
	}
	second := chars[index]
	index++
	for index < len(chars) {
		if b.isBoundaryChar(chars[index]) != b.isBoundaryChar(second) {
			break
		}
		index++
	}
	return index
}

func reverseRunes(text string) []rune {
	chars := []rune(text)
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	return chars
}
