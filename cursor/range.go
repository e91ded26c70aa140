package cursor

// CursorRange is a selected range of text, in full cursor form.
// Primary is the moving end of the selection: where the cursor blinks and
// where the next drag motion applies. Secondary is the anchor, fixed at the
// start of the gesture. Primary may be before or after Secondary.
type CursorRange struct {
	Primary   Cursor
	Secondary Cursor
}

// OneCursorRange returns an empty (single-point) range at the cursor.
func OneCursorRange(c Cursor) CursorRange {
	return CursorRange{Primary: c, Secondary: c}
}

// TwoCursorRange returns a range from min to max with the primary end at
// max.
func TwoCursorRange(min, max Cursor) CursorRange {
	return CursorRange{Primary: max, Secondary: min}
}

// IsEmpty reports whether the range selects no characters.
func (r CursorRange) IsEmpty() bool {
	return r.Primary.CCursor.SamePos(r.Secondary.CCursor)
}

// Sorted returns the two ends ordered by character offset.
func (r CursorRange) Sorted() [2]Cursor {
	if r.Primary.CCursor.Index <= r.Secondary.CCursor.Index {
		return [2]Cursor{r.Primary, r.Secondary}
	}
	return [2]Cursor{r.Secondary, r.Primary}
}

// AsCCursorRange reduces the range to its character-offset form.
func (r CursorRange) AsCCursorRange() CCursorRange {
	return CCursorRange{
		Primary:   r.Primary.CCursor,
		Secondary: r.Secondary.CCursor,
	}
}

// Extend returns the union of the two ranges: a range spanning from the
// minimum to the maximum of all four endpoints. The primary end follows
// the direction of growth: if other reaches further left than r, the
// result's primary is the left end, otherwise the right end. This keeps
// word- and line-drags feeling directional.
func (r CursorRange) Extend(other CursorRange) CursorRange {
	rs := r.Sorted()
	os := other.Sorted()

	min := rs[0]
	if os[0].CCursor.Index < min.CCursor.Index {
		min = os[0]
	}
	max := rs[1]
	if os[1].CCursor.Index > max.CCursor.Index {
		max = os[1]
	}

	if os[0].CCursor.Index < rs[0].CCursor.Index {
		// Grew leftward: the moving end is the left one.
		return CursorRange{Primary: min, Secondary: max}
	}
	return CursorRange{Primary: max, Secondary: min}
}

// CCursorRange is a selected range in character-offset form.
// Primary is the moving end, Secondary the anchor, as in CursorRange.
type CCursorRange struct {
	Primary   CCursor
	Secondary CCursor
}

// OneCCursorRange returns an empty (single-point) range at the cursor.
func OneCCursorRange(c CCursor) CCursorRange {
	return CCursorRange{Primary: c, Secondary: c}
}

// TwoCCursorRange returns a range from min to max with the primary end at
// max.
func TwoCCursorRange(min, max CCursor) CCursorRange {
	return CCursorRange{Primary: max, Secondary: min}
}

// IsEmpty reports whether the range selects no characters.
func (r CCursorRange) IsEmpty() bool {
	return r.Primary.SamePos(r.Secondary)
}

// Sorted returns the two ends ordered by character offset.
func (r CCursorRange) Sorted() [2]CCursor {
	if r.Primary.Index <= r.Secondary.Index {
		return [2]CCursor{r.Primary, r.Secondary}
	}
	return [2]CCursor{r.Secondary, r.Primary}
}
