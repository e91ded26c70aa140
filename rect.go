package glyphkit

// Rect is an axis-aligned rectangle in points.
// Min is the top-left corner, Max the bottom-right (y grows downward,
// screen convention).
type Rect struct {
	Min, Max Vec2
}

// RectFromMinSize builds a rectangle from its top-left corner and size.
func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the size of the rectangle.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Translate returns the rectangle moved by the given offset.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Expand returns the rectangle grown by the given margin on all sides.
// A negative margin shrinks the rectangle.
func (r Rect) Expand(margin float32) Rect {
	m := Vec2{X: margin, Y: margin}
	return Rect{Min: r.Min.Sub(m), Max: r.Max.Add(m)}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Vec2{X: min(r.Min.X, s.Min.X), Y: min(r.Min.Y, s.Min.Y)},
		Max: Vec2{X: max(r.Max.X, s.Max.X), Y: max(r.Max.Y, s.Max.Y)},
	}
}
