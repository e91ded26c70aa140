package selection

import (
	"testing"

	"github.com/glyphkit/glyphkit/cursor"
)

func pressAt(shift bool) PointerEvent {
	return PointerEvent{
		Pressed:     true,
		Down:        true,
		Hovered:     true,
		DragCapable: true,
		ShiftHeld:   shift,
	}
}

func dragEvent() PointerEvent {
	return PointerEvent{
		Down:        true,
		Dragged:     true,
		DragCapable: true,
	}
}

func charRangeOf(t *testing.T, s *TextCursorState) (min, max, primary int) {
	t.Helper()
	r, ok := s.CharRange()
	if !ok {
		t.Fatal("no selection")
	}
	sorted := r.Sorted()
	return sorted[0].Index, sorted[1].Index, r.Primary.Index
}

func TestPointerInteractionPressPlacesCursor(t *testing.T) {
	g := newFakeGalley("foo bar", 0)
	var s TextCursorState

	if !s.PointerInteraction(pressAt(false), g.cursorAt(5), g) {
		t.Fatal("press not reported as interacting")
	}
	min, max, _ := charRangeOf(t, &s)
	if min != 5 || max != 5 {
		t.Errorf("press selection = [%d, %d], want [5, 5]", min, max)
	}
}

func TestPointerInteractionCharacterDrag(t *testing.T) {
	g := newFakeGalley("foo bar", 0)
	var s TextCursorState

	s.PointerInteraction(pressAt(false), g.cursorAt(2), g)
	s.PointerInteraction(dragEvent(), g.cursorAt(6), g)

	min, max, primary := charRangeOf(t, &s)
	if min != 2 || max != 6 || primary != 6 {
		t.Errorf("drag selection = [%d, %d] primary %d, want [2, 6] primary 6", min, max, primary)
	}

	// Dragging back across the anchor flips the selection.
	s.PointerInteraction(dragEvent(), g.cursorAt(0), g)
	min, max, primary = charRangeOf(t, &s)
	if min != 0 || max != 2 || primary != 0 {
		t.Errorf("reverse drag = [%d, %d] primary %d, want [0, 2] primary 0", min, max, primary)
	}
}

func TestPointerInteractionWordSelect(t *testing.T) {
	g := newFakeGalley("foo bar", 0)
	var s TextCursorState

	// A completed click arms word granularity for the press that follows
	// within the double-click window.
	s.PointerInteraction(PointerEvent{Clicked: true, DragCapable: true}, g.cursorAt(5), g)
	if s.SelectionBoundary() != BoundaryWord {
		t.Fatalf("boundary after click = %v, want word", s.SelectionBoundary())
	}

	ev := pressAt(false)
	ev.SecondsSinceLastClick = 0.1
	s.PointerInteraction(ev, g.cursorAt(5), g)

	min, max, _ := charRangeOf(t, &s)
	if min != 4 || max != 7 {
		t.Errorf("word select = [%d, %d], want [4, 7]", min, max)
	}
}

func TestPointerInteractionWordDragExtends(t *testing.T) {
	g := newFakeGalley("foo bar baz", 0)
	var s TextCursorState

	s.PointerInteraction(PointerEvent{Clicked: true, DragCapable: true}, g.cursorAt(5), g)
	ev := pressAt(false)
	ev.SecondsSinceLastClick = 0.1
	s.PointerInteraction(ev, g.cursorAt(5), g) // selects "bar"

	// Dragging left extends to include "foo", keeping "bar" selected.
	s.PointerInteraction(dragEvent(), g.cursorAt(1), g)
	min, max, primary := charRangeOf(t, &s)
	if min != 0 || max != 7 || primary != 0 {
		t.Errorf("leftward word drag = [%d, %d] primary %d, want [0, 7] primary 0", min, max, primary)
	}

	// Dragging right again extends the other way; the initial click's
	// word stays covered.
	s.PointerInteraction(dragEvent(), g.cursorAt(9), g)
	min, max, _ = charRangeOf(t, &s)
	if min != 4 || max != 11 {
		t.Errorf("rightward word drag = [%d, %d], want [4, 11]", min, max)
	}
}

func TestPointerInteractionLineSelect(t *testing.T) {
	g := newFakeGalley("one\ntwo three\nfour", 0)
	var s TextCursorState

	s.PointerInteraction(PointerEvent{DoubleClicked: true, DragCapable: true}, g.cursorAt(6), g)
	if s.SelectionBoundary() != BoundaryLine {
		t.Fatalf("boundary after double click = %v, want line", s.SelectionBoundary())
	}

	ev := pressAt(false)
	ev.SecondsSinceLastClick = 0.1
	s.PointerInteraction(ev, g.cursorAt(6), g)

	min, max, _ := charRangeOf(t, &s)
	if min != 4 || max != 13 {
		t.Errorf("line select = [%d, %d], want [4, 13]", min, max)
	}
}

func TestBoundaryDecaysToCharacter(t *testing.T) {
	g := newFakeGalley("foo bar", 0)
	var s TextCursorState

	s.PointerInteraction(PointerEvent{Clicked: true, DragCapable: true}, g.cursorAt(0), g)
	if s.SelectionBoundary() != BoundaryWord {
		t.Fatal("boundary not armed to word")
	}

	// A held button keeps the granularity even past the window.
	s.PointerInteraction(PointerEvent{Down: true, DragCapable: true, SecondsSinceLastClick: 1}, g.cursorAt(0), g)
	if s.SelectionBoundary() != BoundaryWord {
		t.Error("boundary decayed while the button was held")
	}

	s.PointerInteraction(PointerEvent{DragCapable: true, SecondsSinceLastClick: 1}, g.cursorAt(0), g)
	if s.SelectionBoundary() != BoundaryCharacter {
		t.Error("boundary did not decay after the double-click window")
	}
}

func TestShiftPressExtendsSelection(t *testing.T) {
	g := newFakeGalley("foo bar", 0)
	var s TextCursorState

	s.PointerInteraction(pressAt(false), g.cursorAt(2), g)
	s.PointerInteraction(pressAt(true), g.cursorAt(6), g)

	min, max, primary := charRangeOf(t, &s)
	if min != 2 || max != 6 || primary != 6 {
		t.Errorf("shift press = [%d, %d] primary %d, want [2, 6] primary 6", min, max, primary)
	}
}

func TestShiftPressWithoutSelection(t *testing.T) {
	g := newFakeGalley("foo bar", 0)
	var s TextCursorState

	s.PointerInteraction(pressAt(true), g.cursorAt(3), g)
	min, max, _ := charRangeOf(t, &s)
	if min != 3 || max != 3 {
		t.Errorf("shift press on empty state = [%d, %d], want [3, 3]", min, max)
	}
}

func TestPointerInteractionNotDragCapable(t *testing.T) {
	g := newFakeGalley("foo bar", 0)
	var s TextCursorState

	ev := pressAt(false)
	ev.DragCapable = false
	if s.PointerInteraction(ev, g.cursorAt(3), g) {
		t.Error("interaction reported on a surface that cannot drag")
	}
	if !s.IsEmpty() {
		t.Error("selection changed on a surface that cannot drag")
	}
}

func TestPointerInteractionHoverOnly(t *testing.T) {
	g := newFakeGalley("foo bar", 0)
	var s TextCursorState

	if s.PointerInteraction(PointerEvent{Hovered: true, DragCapable: true}, g.cursorAt(3), g) {
		t.Error("plain hover reported as interacting")
	}
	if !s.IsEmpty() {
		t.Error("plain hover changed the selection")
	}
}

func TestStateZeroValue(t *testing.T) {
	var s TextCursorState
	if !s.IsEmpty() {
		t.Error("zero state IsEmpty() = false")
	}
	if _, ok := s.CharRange(); ok {
		t.Error("zero state has a char range")
	}
	if _, ok := s.Range(newFakeGalley("x", 0)); ok {
		t.Error("zero state has a cursor range")
	}
	if s.SelectionBoundary() != BoundaryCharacter {
		t.Errorf("zero state boundary = %v, want character", s.SelectionBoundary())
	}
}

func TestStateSetAndClear(t *testing.T) {
	var s TextCursorState

	s.SetCharRange(cursor.TwoCCursorRange(cursor.NewCCursor(1), cursor.NewCCursor(4)))
	if s.IsEmpty() {
		t.Fatal("IsEmpty() after SetCharRange")
	}
	r, ok := s.CharRange()
	if !ok || r.Primary.Index != 4 || r.Secondary.Index != 1 {
		t.Errorf("CharRange() = %+v, %v, want primary 4 secondary 1", r, ok)
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false after Clear")
	}
}

func TestStateFromConstructors(t *testing.T) {
	g := newFakeGalley("hello world", 0)

	cc := StateFromCCursorRange(cursor.TwoCCursorRange(cursor.NewCCursor(0), cursor.NewCCursor(5)))
	if r, ok := cc.CharRange(); !ok || r.Primary.Index != 5 {
		t.Errorf("CharRange() = %+v, %v, want primary 5", r, ok)
	}
	if r, ok := cc.Range(g); !ok || r.Primary.CCursor.Index != 5 {
		t.Errorf("Range() = %+v, %v, want primary at 5", r, ok)
	}

	full := StateFromCursorRange(cursor.TwoCursorRange(g.cursorAt(2), g.cursorAt(7)))
	if r, ok := full.CharRange(); !ok || r.Primary.Index != 7 || r.Secondary.Index != 2 {
		t.Errorf("CharRange() = %+v, %v, want [2, 7]", r, ok)
	}
}

func TestRangeSurvivesRewrap(t *testing.T) {
	const text = "aaaa bbbb cccc"

	wide := newFakeGalley(text, 0)
	var s TextCursorState
	s.PointerInteraction(pressAt(false), wide.cursorAt(5), wide)
	s.PointerInteraction(dragEvent(), wide.cursorAt(9), wide)

	// The same text wrapped at 5 characters per row: character offsets
	// must be preserved even though rows moved.
	narrow := newFakeGalley(text, 5)
	r, ok := s.Range(narrow)
	if !ok {
		t.Fatal("no selection after rewrap")
	}
	if r.Secondary.CCursor.Index != 5 || r.Primary.CCursor.Index != 9 {
		t.Errorf("selection after rewrap = [%d, %d], want [5, 9]",
			r.Secondary.CCursor.Index, r.Primary.CCursor.Index)
	}
	if r.Primary.RCursor.Row == 0 {
		t.Error("rewrapped cursor still on row 0, expected a later row")
	}
}
