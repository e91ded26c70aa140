// Package atlas implements the shared texture atlas that glyph bitmaps are
// packed into for rendering.
//
// One Atlas is typically shared by several font faces. Every allocation
// acquires the atlas lock for the duration of a single allocate-and-write
// operation, so faces can alias the same atlas without coordination.
package atlas

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/glyphkit/glyphkit"
)

// Format selects the pixel format of the atlas texture.
type Format int

const (
	// FormatCoverage is a single-channel coverage image (alpha mask).
	FormatCoverage Format = iota

	// FormatRGBA is a premultiplied-RGBA image. Coverage values written
	// into it are gamma corrected so partial-coverage edges blend
	// correctly when sampled as sRGB.
	FormatRGBA
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatCoverage:
		return "Coverage"
	case FormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// Config holds atlas configuration.
type Config struct {
	// Width is the texture width in pixels. Fixed for the atlas lifetime.
	// Default: 1024
	Width int

	// Height is the initial texture height in pixels.
	// The atlas grows by doubling its height when full, up to MaxHeight.
	// Default: 128
	Height int

	// MaxHeight caps growth. Allocation fails once the packer cannot place
	// a rectangle at MaxHeight. Default: 8192
	MaxHeight int

	// Padding is the gap between packed rectangles, preventing bleeding
	// when the texture is sampled with filtering. Default: 1
	Padding int

	// Format is the pixel format. Default: FormatCoverage
	Format Format
}

// DefaultConfig returns the default atlas configuration.
func DefaultConfig() Config {
	return Config{
		Width:     1024,
		Height:    128,
		MaxHeight: 8192,
		Padding:   1,
		Format:    FormatCoverage,
	}
}

// Atlas packs rectangular glyph bitmaps into a shared image and owns the
// pixel data. It is safe for concurrent use; every allocate-and-write
// operation holds the internal lock and no lock is held across calls.
type Atlas struct {
	mu sync.Mutex

	format    Format
	coverage  *image.Alpha // set when format == FormatCoverage
	rgba      *image.RGBA  // set when format == FormatRGBA
	packer    *shelfPacker
	maxHeight int

	// generation increments whenever the pixel buffer is reallocated
	// (atlas growth). Renderers compare it to know when to re-upload.
	generation uint64
}

// New creates an atlas with the given configuration.
// Zero-value config fields fall back to DefaultConfig values.
func New(cfg Config) *Atlas {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.MaxHeight <= 0 {
		cfg.MaxHeight = def.MaxHeight
	}
	if cfg.MaxHeight < cfg.Height {
		cfg.MaxHeight = cfg.Height
	}
	if cfg.Padding < 0 {
		cfg.Padding = def.Padding
	}

	a := &Atlas{
		format:    cfg.Format,
		packer:    newShelfPacker(cfg.Width, cfg.Height, cfg.Padding),
		maxHeight: cfg.MaxHeight,
	}
	r := image.Rect(0, 0, cfg.Width, cfg.Height)
	switch cfg.Format {
	case FormatRGBA:
		a.rgba = image.NewRGBA(r)
	default:
		a.coverage = image.NewAlpha(r)
	}
	return a
}

// Region is a write handle into an allocated rectangle.
// It is only valid inside the render callback passed to Allocate, while the
// atlas lock is held.
type Region struct {
	a      *Atlas
	origin image.Point
	w, h   int
}

// Size returns the width and height of the region in pixels.
func (r Region) Size() (w, h int) {
	return r.w, r.h
}

// SetCoverage writes a coverage value v in [0, 1] at region-local (x, y).
// Values at or below zero are skipped. For an RGBA atlas the value is
// gamma corrected (exponent 1/2.2) and stored premultiplied.
func (r Region) SetCoverage(x, y int, v float32) {
	if v <= 0 || x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	px := r.origin.X + x
	py := r.origin.Y + y
	switch r.a.format {
	case FormatRGBA:
		a := fastRound(float32(math.Pow(float64(v), 1/2.2)) * 255)
		r.a.rgba.SetRGBA(px, py, color.RGBA{R: a, G: a, B: a, A: a})
	default:
		r.a.coverage.SetAlpha(px, py, color.Alpha{A: fastRound(v * 255)})
	}
}

// Allocate reserves a w×h pixel rectangle and invokes render with a write
// handle into it, all under the atlas lock. It returns the placement
// position (texel coordinates of the top-left corner).
//
// If the packer is full the atlas grows by doubling its height (existing
// pixels are copied) until MaxHeight is reached; past that, Allocate
// returns ErrAtlasFull.
//
// Zero-sized rectangles are rejected with ErrZeroSize; callers encode
// invisible glyphs as an empty UV rectangle instead of allocating.
func (a *Atlas) Allocate(w, h int, render func(Region)) (image.Point, error) {
	if w <= 0 || h <= 0 {
		return image.Point{}, ErrZeroSize
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	x, y, ok := a.packer.allocate(w, h)
	for !ok {
		if !a.growLocked(h) {
			return image.Point{}, ErrAtlasFull
		}
		x, y, ok = a.packer.allocate(w, h)
	}

	pos := image.Point{X: x, Y: y}
	if render != nil {
		render(Region{a: a, origin: pos, w: w, h: h})
	}
	return pos, nil
}

// growLocked doubles the atlas height (at least enough for a rectangle of
// height need) and copies existing pixels into the new buffer.
// Returns false when the atlas is already at its maximum height.
// Caller must hold a.mu.
func (a *Atlas) growLocked(need int) bool {
	oldH := a.packer.height
	if oldH >= a.maxHeight {
		glyphkit.Logger().Warn("texture atlas at maximum size",
			"width", a.packer.width, "height", oldH)
		return false
	}
	newH := oldH * 2
	for newH < a.packer.bottom()+need+a.packer.padding {
		newH *= 2
	}
	if newH > a.maxHeight {
		newH = a.maxHeight
	}

	r := image.Rect(0, 0, a.packer.width, newH)
	switch a.format {
	case FormatRGBA:
		grown := image.NewRGBA(r)
		copy(grown.Pix, a.rgba.Pix)
		a.rgba = grown
	default:
		grown := image.NewAlpha(r)
		copy(grown.Pix, a.coverage.Pix)
		a.coverage = grown
	}
	a.packer.grow(newH)
	a.generation++

	glyphkit.Logger().Debug("texture atlas grown",
		"width", a.packer.width, "from", oldH, "to", newH)
	return true
}

// Image returns the current pixel buffer (*image.Alpha or *image.RGBA
// depending on the format). The returned image is replaced when the atlas
// grows; callers should re-fetch it whenever Generation changes and must
// not write to it.
func (a *Atlas) Image() image.Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.format == FormatRGBA {
		return a.rgba
	}
	return a.coverage
}

// Format returns the pixel format of the atlas.
func (a *Atlas) Format() Format {
	return a.format
}

// Size returns the current texture size in pixels.
func (a *Atlas) Size() (w, h int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.packer.width, a.packer.height
}

// Generation returns the current buffer generation. It increments every
// time the pixel buffer is reallocated due to growth.
func (a *Atlas) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

// Utilization returns the fraction of the atlas area currently packed,
// in the range [0, 1].
func (a *Atlas) Utilization() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.packer.utilization()
}

// fastRound rounds v to the nearest uint8, clamping to 255.
func fastRound(v float32) uint8 {
	if v >= 254.5 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}
