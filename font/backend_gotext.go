package font

import (
	"bytes"
	"iter"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// GoTextBackend implements Backend over go-text/typesetting. Compared to
// SFNTBackend it reads outlines in font units (scaled by units-per-em) and
// can enumerate the character map directly instead of probing.
//
// Pair kerning is not exposed at the face level by typesetting; it is
// applied during full HarfBuzz shaping, which is outside this module's
// scope. Kern therefore always reports 0.
type GoTextBackend struct {
	face *gotext.Face
	upem float32
}

// NewGoTextBackend parses TTF or OTF font data.
func NewGoTextBackend(data []byte) (*GoTextBackend, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &GoTextBackend{
		face: face,
		upem: float32(face.Upem()),
	}, nil
}

// GlyphID implements Backend.
func (b *GoTextBackend) GlyphID(r rune) GlyphID {
	gid, ok := b.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// HAdvance implements Backend.
func (b *GoTextBackend) HAdvance(id GlyphID, scale float32) float32 {
	return b.face.HorizontalAdvance(gotext.GID(id)) * scale / b.upem
}

// Kern implements Backend. See the type comment.
func (b *GoTextBackend) Kern(prev, next GlyphID, scale float32) float32 {
	return 0
}

// Outline implements Backend.
func (b *GoTextBackend) Outline(id GlyphID, scale float32) (OutlineRaster, bool) {
	data := b.face.GlyphData(gotext.GID(id))
	outline, ok := data.(gotext.GlyphOutline)
	if !ok {
		// Bitmap or SVG glyph data: not outlineable here.
		return nil, false
	}

	// Font units are y-up; pixel space is y-down.
	k := scale / b.upem
	segments := make([]segment, 0, len(outline.Segments))
	for _, rs := range outline.Segments {
		var seg segment
		switch rs.Op {
		case ot.SegmentOpMoveTo:
			seg.op = segMoveTo
		case ot.SegmentOpLineTo:
			seg.op = segLineTo
		case ot.SegmentOpQuadTo:
			seg.op = segQuadTo
		case ot.SegmentOpCubeTo:
			seg.op = segCubeTo
		}
		for i := 0; i < seg.argCount(); i++ {
			seg.args[i] = segPoint{
				x: rs.Args[i].X * k,
				y: -rs.Args[i].Y * k,
			}
		}
		segments = append(segments, seg)
	}
	return newOutlineRaster(segments), true
}

// Codepoints implements Backend, iterating the font's cmap table.
func (b *GoTextBackend) Codepoints() iter.Seq2[GlyphID, rune] {
	return func(yield func(GlyphID, rune) bool) {
		it := b.face.Cmap.Iter()
		for it.Next() {
			r, gid := it.Char()
			if !yield(GlyphID(gid), r) {
				return
			}
		}
	}
}
