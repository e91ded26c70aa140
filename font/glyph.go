// Package font implements glyph metrics caching on top of a shared texture
// atlas: per-face caches (Face) that rasterize characters on first use, and
// ordered fallback sets (FaceSet) that resolve a character through the
// first face supporting it.
package font

import "github.com/glyphkit/glyphkit"

// GlyphID identifies a glyph within one font face. IDs are font-scoped and
// opaque; 0 means "no glyph" by OpenType convention.
type GlyphID uint16

// UvRect locates a rasterized glyph in the texture atlas and positions it
// for rendering.
type UvRect struct {
	// Offset is the X/Y displacement from the pen position to the
	// glyph rectangle's top-left corner, in points.
	Offset glyphkit.Vec2

	// Size of the glyph rectangle on screen, in points.
	// Note that the height differs from the font height.
	Size glyphkit.Vec2

	// Min is the top-left corner of the glyph in the atlas,
	// in texel coordinates.
	Min [2]uint16

	// Max is the bottom-right corner (exclusive).
	Max [2]uint16
}

// IsNothing reports whether the glyph has no pixels in the atlas
// (e.g. a space).
func (u UvRect) IsNothing() bool {
	return u.Min == u.Max
}

// Glyph is a rasterized character's render metrics. Immutable once
// computed; cached values are returned by copy.
type Glyph struct {
	// ID of the glyph in its originating face. 0 for synthesized glyphs
	// (tab, invisible characters, native-path glyphs).
	ID GlyphID

	// AdvanceWidth is how far the pen moves after this glyph, in points.
	AdvanceWidth float32

	// UV locates the glyph in the atlas. Empty (Min == Max) for
	// invisible glyphs such as space.
	UV UvRect
}
