package font

import (
	"image"
	"iter"
)

// Backend is the contract a font face consumes from a font file parser.
// All scales are in pixels; the Face converts to points using its
// pixels-per-point ratio.
//
// A Backend must be usable from a single goroutine at a time; the owning
// Face serializes access through its own locking.
type Backend interface {
	// GlyphID looks up the glyph for a character.
	// Returns 0 when the font has no glyph for it.
	GlyphID(r rune) GlyphID

	// HAdvance returns the horizontal advance of a glyph at the given
	// pixel scale.
	HAdvance(id GlyphID, scale float32) float32

	// Kern returns the pair-kerning adjustment between two glyphs at the
	// given pixel scale, or 0 when the font carries no kerning data.
	Kern(prev, next GlyphID, scale float32) float32

	// Outline returns a rasterizer for the glyph's outline at the given
	// pixel scale. ok is false when the glyph cannot be outlined (broken
	// glyph data, or a bitmap-only glyph). A glyph with no visible
	// contours (such as space) reports ok with empty pixel bounds.
	Outline(id GlyphID, scale float32) (OutlineRaster, bool)

	// Codepoints iterates the font's character map: every (glyph id,
	// character) pair the font supports, in no particular order.
	Codepoints() iter.Seq2[GlyphID, rune]
}

// OutlineRaster rasterizes one glyph outline at a fixed scale.
type OutlineRaster interface {
	// PixelBounds is the glyph's pixel bounding box relative to the pen
	// position on the baseline, with y growing downward (Min.Y is
	// negative for glyphs reaching above the baseline). An empty
	// rectangle means the glyph has no visible pixels.
	PixelBounds() image.Rectangle

	// Draw calls set for every covered pixel with coverage in (0, 1].
	// Coordinates are relative to PixelBounds().Min, i.e. (0, 0) is the
	// top-left of the bounding box.
	Draw(set func(x, y int, coverage float32))
}

// NativeMetrics is the measurement a native text backend reports for one
// character. All values are in pixels. The bounding box extents are
// magnitudes relative to the text origin, mirroring a 2D canvas
// TextMetrics.
type NativeMetrics struct {
	// Advance is the horizontal advance width.
	Advance float32

	// Left and Right are the actual bounding box extents to either side
	// of the origin.
	Left, Right float32

	// Ascent and Descent are the actual bounding box extents above and
	// below the baseline.
	Ascent, Descent float32
}

// NativeBackend rasterizes text through an external 2D drawing surface.
// It serves faces that have no font Backend configured (system fonts whose
// files are not directly readable). Any surface that can measure a
// character and render it into a pixel buffer satisfies the contract,
// such as a browser canvas, a cairo image surface, or a test fake.
type NativeBackend interface {
	// Measure returns the character's metrics when drawn with the given
	// font family at the given pixel size.
	Measure(c rune, family string, sizePixels float32) NativeMetrics

	// Rasterize draws the character into a width×height pixel buffer
	// with the pen at x=0 and the baseline at y=baseline, and returns
	// the result. The alpha channel of the returned image is used as
	// coverage.
	Rasterize(c rune, family string, sizePixels float32, width, height int, baseline float32) image.Image
}
