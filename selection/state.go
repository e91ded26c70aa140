package selection

import (
	"github.com/glyphkit/glyphkit/cursor"
)

// MaxDoubleClickDelay is how long after a click, in seconds, a press
// still counts toward a multi-click gesture. While within this window
// the selection granularity from the last click sticks, so the drag
// that follows a double click keeps extending by words.
const MaxDoubleClickDelay = 0.3

// PointerEvent describes one frame of pointer input over the text.
type PointerEvent struct {
	// Clicked is set the frame a single click completes.
	Clicked bool
	// DoubleClicked is set the frame a double click completes.
	DoubleClicked bool
	// Pressed is set the frame a button goes down.
	Pressed bool
	// Down reports whether any button is currently held.
	Down bool
	// Hovered reports whether the pointer is over the text.
	Hovered bool
	// Dragged reports whether an in-progress drag moved this frame.
	Dragged bool
	// DragCapable reports whether the text surface senses drags at
	// all. When false, pointer input never changes the selection.
	DragCapable bool
	// ShiftHeld reports the shift modifier.
	ShiftHeld bool
	// SecondsSinceLastClick is the time since the last completed
	// click.
	SecondsSinceLastClick float64
}

// rangeKind tags which representation a TextCursorState currently
// holds. The two forms are never populated at once.
type rangeKind uint8

const (
	rangeNone rangeKind = iota
	// rangeCursor holds full cursors whose paragraph component
	// survives re-wrapping at a different width.
	rangeCursor
	// rangeCChar holds flat character offsets, used when no layout
	// was available to resolve them.
	rangeCChar
)

// TextCursorState is the per-widget selection state carried between
// frames. The zero value is an empty selection with character
// granularity.
//
// The selection is stored in one of two forms. After interacting
// against a layout it holds full cursors, so the selection tracks the
// same characters when the text re-wraps. Code without a layout at
// hand can only store character offsets; the offsets are resolved
// against a layout on the next read.
type TextCursorState struct {
	kind         rangeKind
	cursorRange  cursor.CursorRange
	ccursorRange cursor.CCursorRange

	// The range selected by the initial click of a word or line drag,
	// which the drag extends rather than replaces.
	hasInitial   bool
	initialRange cursor.CursorRange

	boundary Boundary
}

// StateFromCursorRange returns a state holding r.
func StateFromCursorRange(r cursor.CursorRange) TextCursorState {
	return TextCursorState{kind: rangeCursor, cursorRange: r}
}

// StateFromCCursorRange returns a state holding r.
func StateFromCCursorRange(r cursor.CCursorRange) TextCursorState {
	return TextCursorState{kind: rangeCChar, ccursorRange: r}
}

// IsEmpty reports whether nothing is selected and no cursor is placed.
func (s *TextCursorState) IsEmpty() bool {
	return s.kind == rangeNone
}

// SelectionBoundary returns the granularity the next drag will use.
func (s *TextCursorState) SelectionBoundary() Boundary {
	return s.boundary
}

// CharRange returns the selection as character offsets. ok is false
// when nothing is selected.
func (s *TextCursorState) CharRange() (r cursor.CCursorRange, ok bool) {
	switch s.kind {
	case rangeCursor:
		return s.cursorRange.AsCCursorRange(), true
	case rangeCChar:
		return s.ccursorRange, true
	default:
		return cursor.CCursorRange{}, false
	}
}

// Range returns the selection as full cursors resolved against g.
// A stored cursor range is re-resolved through its paragraph
// positions, so the result is correct even if g wrapped the text at a
// different width than the layout the range was made against. ok is
// false when nothing is selected.
func (s *TextCursorState) Range(g Galley) (r cursor.CursorRange, ok bool) {
	switch s.kind {
	case rangeCursor:
		return cursor.CursorRange{
			Primary:   g.FromPCursor(s.cursorRange.Primary.PCursor),
			Secondary: g.FromPCursor(s.cursorRange.Secondary.PCursor),
		}, true
	case rangeCChar:
		return cursor.CursorRange{
			Primary:   g.FromCCursor(s.ccursorRange.Primary),
			Secondary: g.FromCCursor(s.ccursorRange.Secondary),
		}, true
	default:
		return cursor.CursorRange{}, false
	}
}

// SetRange stores r, replacing any previous selection.
func (s *TextCursorState) SetRange(r cursor.CursorRange) {
	s.kind = rangeCursor
	s.cursorRange = r
	s.ccursorRange = cursor.CCursorRange{}
}

// SetCharRange stores r, replacing any previous selection.
func (s *TextCursorState) SetCharRange(r cursor.CCursorRange) {
	s.kind = rangeCChar
	s.ccursorRange = r
	s.cursorRange = cursor.CursorRange{}
}

// Clear removes the selection.
func (s *TextCursorState) Clear() {
	s.kind = rangeNone
	s.cursorRange = cursor.CursorRange{}
	s.ccursorRange = cursor.CCursorRange{}
}

// PointerInteraction advances the selection by one frame of pointer
// input. cursorAtPointer is the position in g under the pointer.
// It reports whether the event changed or anchored the selection, so
// the caller knows to keep keyboard focus on the text.
//
// A press places the cursor, or selects a whole word or line right
// away when it is part of a multi-click gesture. A shift press instead
// moves the primary end of the existing selection. Dragging at
// character granularity moves the primary cursor; at word or line
// granularity it extends the range selected by the initial click.
func (s *TextCursorState) PointerInteraction(ev PointerEvent, cursorAtPointer cursor.Cursor, g Galley) bool {
	text := g.Text()

	if ev.DoubleClicked {
		s.boundary = BoundaryLine
	} else if ev.Clicked {
		s.boundary = BoundaryWord
	} else if !ev.Down && ev.SecondsSinceLastClick > MaxDoubleClickDelay {
		s.boundary = BoundaryCharacter
	}

	if !ev.DragCapable {
		return false
	}

	if ev.Hovered && ev.Pressed {
		if ev.ShiftHeld {
			if r, ok := s.Range(g); ok {
				r.Primary = cursorAtPointer
				s.SetRange(r)
			} else {
				s.SetRange(cursor.OneCursorRange(cursorAtPointer))
			}
		} else {
			var initial cursor.CursorRange
			if s.boundary == BoundaryCharacter {
				initial = cursor.OneCursorRange(cursorAtPointer)
			} else {
				initial = resolveCCursorRange(g, s.boundary.SelectBoundedAt(text, cursorAtPointer.CCursor))
			}
			s.initialRange = initial
			s.hasInitial = true
			s.SetRange(initial)
		}
		return true
	}

	if ev.Dragged {
		if s.boundary == BoundaryCharacter {
			if r, ok := s.Range(g); ok {
				r.Primary = cursorAtPointer
				s.SetRange(r)
			}
		} else if s.hasInitial {
			under := resolveCCursorRange(g, s.boundary.SelectBoundedAt(text, cursorAtPointer.CCursor))
			s.SetRange(s.initialRange.Extend(under))
		}
		return true
	}

	return false
}

func resolveCCursorRange(g Galley, r cursor.CCursorRange) cursor.CursorRange {
	return cursor.CursorRange{
		Primary:   g.FromCCursor(r.Primary),
		Secondary: g.FromCCursor(r.Secondary),
	}
}
