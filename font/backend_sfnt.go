package font

import (
	"iter"
	"sync"
	"unicode"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTBackend implements Backend over an OpenType/TrueType font using
// golang.org/x/image/font/sfnt. Glyph outlines are rasterized with
// x/image/vector.
//
// SFNTBackend is safe for concurrent use: the sfnt.Buffer it reuses across
// calls is guarded by a mutex.
type SFNTBackend struct {
	font *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewSFNTBackend parses TTF or OTF font data.
func NewSFNTBackend(data []byte) (*SFNTBackend, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &SFNTBackend{font: f}, nil
}

// GlyphID implements Backend.
func (b *SFNTBackend) GlyphID(r rune) GlyphID {
	b.mu.Lock()
	defer b.mu.Unlock()
	gi, err := b.font.GlyphIndex(&b.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(gi)
}

// HAdvance implements Backend.
func (b *SFNTBackend) HAdvance(id GlyphID, scale float32) float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	adv, err := b.font.GlyphAdvance(&b.buf, sfnt.GlyphIndex(id), pixelsToFixed(scale), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToPixels(adv)
}

// Kern implements Backend. Fonts without kerning data report 0.
func (b *SFNTBackend) Kern(prev, next GlyphID, scale float32) float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	k, err := b.font.Kern(&b.buf, sfnt.GlyphIndex(prev), sfnt.GlyphIndex(next), pixelsToFixed(scale), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToPixels(k)
}

// Outline implements Backend.
func (b *SFNTBackend) Outline(id GlyphID, scale float32) (OutlineRaster, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	raw, err := b.font.LoadGlyph(&b.buf, sfnt.GlyphIndex(id), pixelsToFixed(scale), nil)
	if err != nil {
		// sfnt.ErrColoredGlyph and friends: not outlineable.
		return nil, false
	}

	segments := make([]segment, 0, len(raw))
	for _, rs := range raw {
		var seg segment
		switch rs.Op {
		case sfnt.SegmentOpMoveTo:
			seg.op = segMoveTo
		case sfnt.SegmentOpLineTo:
			seg.op = segLineTo
		case sfnt.SegmentOpQuadTo:
			seg.op = segQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.op = segCubeTo
		}
		for i := 0; i < seg.argCount(); i++ {
			seg.args[i] = segPoint{
				x: fixedToPixels(rs.Args[i].X),
				y: fixedToPixels(rs.Args[i].Y),
			}
		}
		segments = append(segments, seg)
	}
	return newOutlineRaster(segments), true
}

// Codepoints implements Backend. sfnt exposes no character-map iterator,
// so supported characters are found by probing the full Unicode range.
// This is slow and meant for the lazily-computed supported-character set,
// not for per-frame use.
func (b *SFNTBackend) Codepoints() iter.Seq2[GlyphID, rune] {
	return func(yield func(GlyphID, rune) bool) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for r := rune(0); r <= unicode.MaxRune; r++ {
			if r >= 0xD800 && r <= 0xDFFF { // surrogates
				continue
			}
			gi, err := b.font.GlyphIndex(&b.buf, r)
			if err != nil || gi == 0 {
				continue
			}
			if !yield(GlyphID(gi), r) {
				return
			}
		}
	}
}

// pixelsToFixed converts a pixel scale to 26.6 fixed point.
func pixelsToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToPixels converts a 26.6 fixed point value to pixels.
func fixedToPixels(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
