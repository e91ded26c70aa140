package font

import (
	"fmt"
	"slices"

	"github.com/glyphkit/glyphkit"
)

// Replacement characters for unsupported input. The primary is resolved at
// set construction; if no face supports it the fallback is tried.
const (
	PrimaryReplacementChar  = '◻' // white medium square
	FallbackReplacementChar = '?' // fallback for the fallback
)

// faceGlyph is a cached resolution: which face supplied a glyph.
type faceGlyph struct {
	faceIndex int
	glyph     Glyph
}

// FaceSet is an ordered list of faces: a primary plus fallbacks (e.g. for
// emoji). A character resolves through the first face that supports it;
// characters no face supports resolve to a pinned replacement glyph, so
// the set always renders something.
//
// Faces are shared: the same *Face may appear in several sets.
// FaceSet itself is not safe for concurrent use; it is designed for the
// single-threaded per-frame model, where one render loop owns it.
type FaceSet struct {
	faces []*Face

	// characters is the lazily-computed union of the faces' supported
	// characters, sorted. nil until first requested.
	characters []rune

	replacement    faceGlyph
	pixelsPerPoint float32
	rowHeight      float32
	cache          map[rune]faceGlyph
}

// NewFaceSet creates a set from faces in fallback order.
//
// Construction eagerly resolves the replacement glyph and panics when
// neither PrimaryReplacementChar nor FallbackReplacementChar is supported
// by any face: such a configuration cannot guarantee visible output for
// unsupported input, which means the font setup is genuinely broken.
//
// An empty set is permitted (pixels-per-point 1, row height 0); it
// resolves everything to a zero glyph.
func NewFaceSet(faces ...*Face) *FaceSet {
	s := &FaceSet{
		faces:          faces,
		pixelsPerPoint: 1,
		cache:          make(map[rune]faceGlyph),
	}
	if len(faces) == 0 {
		return s
	}

	s.pixelsPerPoint = faces[0].PixelsPerPoint()
	s.rowHeight = faces[0].RowHeight()

	replacement, ok := s.glyphUncached(PrimaryReplacementChar)
	if !ok {
		replacement, ok = s.glyphUncached(FallbackReplacementChar)
	}
	if !ok {
		panic(fmt.Sprintf("font: failed to find replacement characters %q or %q",
			PrimaryReplacementChar, FallbackReplacementChar))
	}
	s.replacement = replacement

	glyphkit.Logger().Debug("font face set ready",
		"faces", len(faces),
		"rowHeight", s.rowHeight,
		"pixelsPerPoint", s.pixelsPerPoint)
	return s
}

// RowHeight is the height of one row of text, in points.
// Fixed at construction from the first face.
func (s *FaceSet) RowHeight() float32 {
	return s.rowHeight
}

// PixelsPerPoint returns the physical pixels per logical point.
// Fixed at construction from the first face.
func (s *FaceSet) PixelsPerPoint() float32 {
	return s.pixelsPerPoint
}

// RoundToPixel rounds a point value to the nearest physical pixel.
func (s *FaceSet) RoundToPixel(point float32) float32 {
	return round32(point*s.pixelsPerPoint) / s.pixelsPerPoint
}

// Glyph resolves a character, falling back across faces and finally to the
// replacement glyph. '\n' intentionally shows up as the replacement
// character: layout code strips line breaks before asking for glyphs.
func (s *FaceSet) Glyph(c rune) Glyph {
	_, g := s.glyphInfo(c)
	return g
}

// GlyphWidth is the advance width of a character, in points.
func (s *FaceSet) GlyphWidth(c rune) float32 {
	return s.Glyph(c).AdvanceWidth
}

// UvRect returns the cached UV rectangle of a character without forcing
// resolution; the zero UvRect if the character was never resolved.
func (s *FaceSet) UvRect(c rune) UvRect {
	if fg, ok := s.cache[c]; ok {
		return fg.glyph.UV
	}
	return UvRect{}
}

// GlyphAndFace resolves a character and reports the face that supplied it.
// The face is nil only for an empty set. Unsupported characters report the
// replacement glyph with the replacement's originating face.
func (s *FaceSet) GlyphAndFace(c rune) (*Face, Glyph) {
	if len(s.faces) == 0 {
		return nil, s.replacement.glyph
	}
	idx, g := s.glyphInfo(c)
	return s.faces[idx], g
}

// FaceIndex resolves a character and returns the index of the face that
// supplied it (the replacement's face index for unsupported characters).
func (s *FaceSet) FaceIndex(c rune) int {
	idx, _ := s.glyphInfo(c)
	return idx
}

// PreloadCommonCharacters eagerly resolves printable ASCII and a few other
// characters that are almost certain to be needed, so first-frame text does
// not pay per-glyph rasterization cost.
func (s *FaceSet) PreloadCommonCharacters() {
	// Printable ASCII [32, 126] excludes control codes.
	for c := rune(32); c <= 126; c++ {
		s.Glyph(c)
	}
	s.Glyph('°')
	s.Glyph(PasswordReplacementChar)
}

// Characters returns all characters supported by any face in the set,
// sorted. Computed lazily on first call and cached; the cache is
// invalidated only by constructing a new set.
func (s *FaceSet) Characters() []rune {
	if s.characters == nil {
		seen := make(map[rune]struct{})
		for _, face := range s.faces {
			for c := range face.Characters() {
				seen[c] = struct{}{}
			}
		}
		s.characters = make([]rune, 0, len(seen))
		for c := range seen {
			s.characters = append(s.characters, c)
		}
		slices.Sort(s.characters)
	}
	return s.characters
}

// glyphInfo resolves through the cache, then the faces, then the
// replacement. Every outcome is cached, so repeated lookups of
// unsupported characters cost one map hit.
func (s *FaceSet) glyphInfo(c rune) (int, Glyph) {
	if fg, ok := s.cache[c]; ok {
		return fg.faceIndex, fg.glyph
	}

	fg, ok := s.glyphUncached(c)
	if !ok {
		fg = s.replacement
		s.cache[c] = fg
	}
	return fg.faceIndex, fg.glyph
}

// glyphUncached tries each face in order; the first hit wins and is
// cached. Misses are not cached here; the caller decides whether to pin
// the replacement.
func (s *FaceSet) glyphUncached(c rune) (faceGlyph, bool) {
	for i, face := range s.faces {
		if g, ok := face.Glyph(c); ok {
			fg := faceGlyph{faceIndex: i, glyph: g}
			s.cache[c] = fg
			return fg, true
		}
	}
	return faceGlyph{}, false
}
