package font

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// segmentOp is the type of outline path operation.
type segmentOp uint8

const (
	segMoveTo segmentOp = iota
	segLineTo
	segQuadTo
	segCubeTo
)

// segPoint is an outline point in pixel space, y growing downward,
// relative to the pen position on the baseline.
type segPoint struct {
	x, y float32
}

// segment is one outline path segment in pixel space.
//   - segMoveTo, segLineTo: args[0] is the target point
//   - segQuadTo: args[0] is the control point, args[1] the target
//   - segCubeTo: args[0], args[1] are control points, args[2] the target
type segment struct {
	op   segmentOp
	args [3]segPoint
}

// argCount returns how many of args are meaningful for the operation.
func (s segment) argCount() int {
	switch s.op {
	case segQuadTo:
		return 2
	case segCubeTo:
		return 3
	default:
		return 1
	}
}

// outlineRaster implements OutlineRaster over pixel-space segments.
// Both font backends reduce their native outline representation to this
// form, so rasterization behaves identically regardless of backend.
type outlineRaster struct {
	segments []segment
	bounds   image.Rectangle
}

// newOutlineRaster computes the pixel bounding box of the segments and
// wraps them for rasterization. The box is conservative: it includes
// control points, which may lie slightly outside the curve.
func newOutlineRaster(segments []segment) *outlineRaster {
	o := &outlineRaster{segments: segments}
	if len(segments) == 0 {
		return o
	}

	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, seg := range segments {
		for i := 0; i < seg.argCount(); i++ {
			p := seg.args[i]
			minX = min(minX, p.x)
			minY = min(minY, p.y)
			maxX = max(maxX, p.x)
			maxY = max(maxY, p.y)
		}
	}
	o.bounds = image.Rect(
		int(math.Floor(float64(minX))),
		int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))),
		int(math.Ceil(float64(maxY))),
	)
	return o
}

// PixelBounds implements OutlineRaster.
func (o *outlineRaster) PixelBounds() image.Rectangle {
	return o.bounds
}

// Draw implements OutlineRaster. It renders the segments with
// x/image/vector into a coverage mask and reports every covered pixel.
func (o *outlineRaster) Draw(set func(x, y int, coverage float32)) {
	w, h := o.bounds.Dx(), o.bounds.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	// The vector rasterizer wants coordinates in the positive quadrant,
	// so the outline is replayed relative to the bounding box origin.
	dx := -float32(o.bounds.Min.X)
	dy := -float32(o.bounds.Min.Y)

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	started := false
	for _, seg := range o.segments {
		switch seg.op {
		case segMoveTo:
			if started {
				z.ClosePath()
			}
			z.MoveTo(seg.args[0].x+dx, seg.args[0].y+dy)
			started = true
		case segLineTo:
			z.LineTo(seg.args[0].x+dx, seg.args[0].y+dy)
		case segQuadTo:
			z.QuadTo(
				seg.args[0].x+dx, seg.args[0].y+dy,
				seg.args[1].x+dx, seg.args[1].y+dy,
			)
		case segCubeTo:
			z.CubeTo(
				seg.args[0].x+dx, seg.args[0].y+dy,
				seg.args[1].x+dx, seg.args[1].y+dy,
				seg.args[2].x+dx, seg.args[2].y+dy,
			)
		}
	}
	if started {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, a := range row {
			if a > 0 {
				set(x, y, float32(a)/255)
			}
		}
	}
}
