package font

import (
	"fmt"
	"image"
	"iter"
	"math"
	"sync"

	"github.com/glyphkit/glyphkit"
	"github.com/glyphkit/glyphkit/atlas"
)

// TabSize is the tab advance, measured in space widths.
const TabSize = 4

// PasswordReplacementChar is shown in place of every character of a
// password field.
const PasswordReplacementChar = '•'

// FaceConfig configures a Face.
type FaceConfig struct {
	// Name of the face. Doubles as the font family passed to the native
	// backend on the backend-less path.
	Name string

	// Backend resolves glyphs from a parsed font file.
	// When nil, the face renders through Native instead.
	Backend Backend

	// Native is the 2D-surface rasterization path, used only when
	// Backend is nil.
	Native NativeBackend

	// ScaleInPixels is the rasterization scale (maximum character
	// height) in physical pixels. Must be > 0.
	ScaleInPixels float32

	// YOffsetPoints shifts every glyph vertically by this many points.
	// A per-face correction for visual centering; rounded to the pixel
	// grid at construction.
	YOffsetPoints float32

	// PixelsPerPoint is the physical pixels per logical point.
	// Must be > 0.
	PixelsPerPoint float32
}

// Face is one font at one size: it resolves characters to glyph metrics,
// rasterizing them into the shared atlas on first use and caching the
// result for its lifetime (the cache grows monotonically, no eviction).
//
// The interface uses points as the unit for everything.
// Face is safe for concurrent use.
type Face struct {
	name           string
	backend        Backend
	native         NativeBackend
	scaleInPixels  float32
	heightInPoints float32
	yOffset        float32
	pixelsPerPoint float32
	atlas          *atlas.Atlas

	mu    sync.RWMutex
	cache map[rune]Glyph
}

// NewFace creates a face writing into the given atlas. Several faces may
// share one atlas; writes are serialized by the atlas itself.
//
// Panics when the atlas is nil, when ScaleInPixels or PixelsPerPoint is
// not positive, or when the config carries neither a Backend nor a Native
// backend (such a face could never resolve anything).
func NewFace(a *atlas.Atlas, cfg FaceConfig) *Face {
	if a == nil {
		panic("font: NewFace requires an atlas")
	}
	if cfg.ScaleInPixels <= 0 {
		panic(fmt.Sprintf("font: ScaleInPixels must be > 0, got %v", cfg.ScaleInPixels))
	}
	if cfg.PixelsPerPoint <= 0 {
		panic(fmt.Sprintf("font: PixelsPerPoint must be > 0, got %v", cfg.PixelsPerPoint))
	}
	if cfg.Backend == nil && cfg.Native == nil {
		panic("font: FaceConfig needs a Backend or a Native backend")
	}

	// Round the offset to the closest pixel so glyph edges stay sharp.
	yOffset := round32(cfg.YOffsetPoints*cfg.PixelsPerPoint) / cfg.PixelsPerPoint

	return &Face{
		name:           cfg.Name,
		backend:        cfg.Backend,
		native:         cfg.Native,
		scaleInPixels:  cfg.ScaleInPixels,
		heightInPoints: cfg.ScaleInPixels / cfg.PixelsPerPoint,
		yOffset:        yOffset,
		pixelsPerPoint: cfg.PixelsPerPoint,
		atlas:          a,
		cache:          make(map[rune]Glyph),
	}
}

// Name returns the face name.
func (f *Face) Name() string {
	return f.name
}

// RowHeight is the height of one row of text, in points.
func (f *Face) RowHeight() float32 {
	return f.heightInPoints
}

// PixelsPerPoint returns the physical pixels per logical point.
func (f *Face) PixelsPerPoint() float32 {
	return f.pixelsPerPoint
}

// Glyph resolves a character to its render metrics, rasterizing into the
// atlas on a cache miss. ok is false when this face cannot render the
// character; a later face in a FaceSet may still supply it, so the miss
// is not cached.
//
// '\n' resolves to false; layout code handles line breaks before glyphs.
func (f *Face) Glyph(c rune) (g Glyph, ok bool) {
	f.mu.RLock()
	g, ok = f.cache[c]
	f.mu.RUnlock()
	if ok {
		return g, true
	}

	if ignoreCharacter(f.name, c) {
		return Glyph{}, false
	}

	if c == '\t' {
		if space, ok := f.Glyph(' '); ok {
			g = Glyph{AdvanceWidth: TabSize * space.AdvanceWidth}
			f.store(c, g)
			return g, true
		}
	}

	if f.backend != nil {
		id := f.backend.GlyphID(c)
		if id == 0 {
			if isInvisibleChar(c) {
				// Zero-metric stand-in so missing formatting
				// characters never hit the replacement glyph.
				g = Glyph{}
				f.store(c, g)
				return g, true
			}
			return Glyph{}, false
		}
		g = f.allocateGlyph(id)
		f.store(c, g)
		return g, true
	}

	g = f.allocateNativeGlyph(c)
	f.store(c, g)
	return g, true
}

// Kern returns the kerning adjustment between two glyphs, in points.
// 0 for faces without a font backend.
func (f *Face) Kern(prev, next GlyphID) float32 {
	if f.backend == nil {
		return 0
	}
	return f.backend.Kern(prev, next, f.scaleInPixels) / f.pixelsPerPoint
}

// Characters iterates all characters this face supports, unordered.
// Empty for backend-less faces: a native surface cannot enumerate its
// font's coverage.
func (f *Face) Characters() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		if f.backend == nil {
			return
		}
		for _, c := range f.backend.Codepoints() {
			if ignoreCharacter(f.name, c) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

func (f *Face) store(c rune, g Glyph) {
	f.mu.Lock()
	f.cache[c] = g
	f.mu.Unlock()
}

// allocateGlyph rasterizes a glyph outline into the atlas and computes its
// metrics. id must be nonzero.
func (f *Face) allocateGlyph(id GlyphID) Glyph {
	var uv UvRect
	if raster, ok := f.backend.Outline(id, f.scaleInPixels); ok {
		bb := raster.PixelBounds()
		w, h := bb.Dx(), bb.Dy()
		if w > 0 && h > 0 {
			pos, err := f.atlas.Allocate(w, h, func(region atlas.Region) {
				raster.Draw(region.SetCoverage)
			})
			if err == nil {
				uv = f.uvRect(pos, w, h, glyphkit.V2(
					float32(bb.Min.X),
					f.scaleInPixels+float32(bb.Min.Y),
				))
			} else {
				glyphkit.Logger().Warn("glyph allocation failed",
					"face", f.name, "glyph", id, "error", err)
			}
		}
	}

	return Glyph{
		ID:           id,
		AdvanceWidth: f.backend.HAdvance(id, f.scaleInPixels) / f.pixelsPerPoint,
		UV:           uv,
	}
}

// allocateNativeGlyph renders a character through the native 2D surface
// and copies the raster into the atlas.
func (f *Face) allocateNativeGlyph(c rune) Glyph {
	m := f.native.Measure(c, f.name, f.scaleInPixels)

	w := int(ceil32(abs32(m.Left)+abs32(m.Right))) + 1
	// Many emoji report too-small descent metrics; the extra quarter
	// scale keeps them from getting cut off.
	h := int(ceil32(abs32(m.Ascent)+abs32(m.Descent)+f.scaleInPixels/4)) + 1

	var uv UvRect
	if w > 0 && h > 0 {
		baseline := m.Ascent + 1
		img := f.native.Rasterize(c, f.name, f.scaleInPixels, w, h, baseline)
		pos, err := f.atlas.Allocate(w, h, func(region atlas.Region) {
			copyCoverage(region, img, w, h)
		})
		if err == nil {
			uv = f.uvRect(pos, w, h, glyphkit.V2(0, f.scaleInPixels-m.Ascent))
		} else {
			glyphkit.Logger().Warn("glyph allocation failed",
				"face", f.name, "char", string(c), "error", err)
		}
	}

	return Glyph{
		AdvanceWidth: m.Advance / f.pixelsPerPoint,
		UV:           uv,
	}
}

// uvRect builds the UV rectangle for a glyph placed at pos with the given
// pixel size and pixel-space offset from the pen position.
func (f *Face) uvRect(pos image.Point, w, h int, offsetInPixels glyphkit.Vec2) UvRect {
	return UvRect{
		Offset: offsetInPixels.Div(f.pixelsPerPoint).Add(glyphkit.V2(0, f.yOffset)),
		Size:   glyphkit.V2(float32(w), float32(h)).Div(f.pixelsPerPoint),
		Min:    [2]uint16{uint16(pos.X), uint16(pos.Y)},
		Max:    [2]uint16{uint16(pos.X + w), uint16(pos.Y + h)},
	}
}

// copyCoverage copies the alpha channel of a natively-rendered image into
// an atlas region.
func copyCoverage(region atlas.Region, img image.Image, w, h int) {
	if img == nil {
		return
	}
	b := img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a > 0 {
				region.SetCoverage(x, y, float32(a)/0xffff)
			}
		}
	}
}

func round32(v float32) float32 { return float32(math.Round(float64(v))) }
func ceil32(v float32) float32  { return float32(math.Ceil(float64(v))) }
func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
