package atlas

// shelfPacker implements shelf-based rectangle packing.
// Simple and fast, and a good fit for glyphs: most rectangles on one shelf
// share a similar height (one font size), so little space is wasted.
//
// The algorithm organizes rectangles in horizontal "shelves".
// Each shelf has a fixed height (determined by the tallest item placed so far).
// New items are placed left-to-right on the current shelf until no space
// remains, then a new shelf is started below.
type shelfPacker struct {
	width   int     // Total width of the atlas
	height  int     // Total height of the atlas
	padding int     // Padding between rectangles
	shelves []shelf // List of shelves

	// Tracking for utilization
	usedArea int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// newShelfPacker creates a new packer for the given dimensions.
func newShelfPacker(width, height, padding int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16), // Preallocate for typical use
	}
}

// allocate finds space for a rectangle of the given size.
// Returns the x, y position and true if space was found.
//
// The algorithm:
//  1. Try to fit on an existing shelf with enough height
//  2. If no shelf fits, create a new shelf
//  3. If no space for a new shelf, allocation fails
func (p *shelfPacker) allocate(w, h int) (x, y int, ok bool) {
	// Add padding to requested size
	paddedW := w + p.padding
	paddedH := h + p.padding

	// Try to find an existing shelf with enough space and height
	for i := range p.shelves {
		shelf := &p.shelves[i]

		// Check if item fits horizontally
		if shelf.x+paddedW > p.width {
			continue
		}

		// Check if item fits vertically in this shelf
		if h > shelf.height {
			// Item is taller than the shelf. Only the last shelf can be
			// extended, and only if there is room below it.
			if i == len(p.shelves)-1 {
				newBottom := shelf.y + paddedH
				if newBottom <= p.height {
					shelf.height = h
					x, y = shelf.x, shelf.y
					shelf.x += paddedW
					p.usedArea += w * h
					return x, y, true
				}
			}
			continue
		}

		// Item fits on this shelf
		x, y = shelf.x, shelf.y
		shelf.x += paddedW
		p.usedArea += w * h
		return x, y, true
	}

	// No existing shelf works - try to create a new one
	newY := 0
	if len(p.shelves) > 0 {
		last := p.shelves[len(p.shelves)-1]
		newY = last.y + last.height + p.padding
	}

	// Check if new shelf fits
	if newY+paddedH > p.height {
		return -1, -1, false
	}

	// Create new shelf
	newShelf := shelf{
		y:      newY,
		height: h,
		x:      paddedW,
	}
	p.shelves = append(p.shelves, newShelf)
	p.usedArea += w * h

	return 0, newY, true
}

// grow raises the packer's height limit, keeping all existing placements.
// Called when the atlas reallocates its pixel buffer with more rows.
func (p *shelfPacker) grow(newHeight int) {
	if newHeight > p.height {
		p.height = newHeight
	}
}

// canFit reports whether an item of the given size could possibly fit
// without actually allocating.
func (p *shelfPacker) canFit(w, h int) bool {
	paddedW := w + p.padding
	paddedH := h + p.padding

	if paddedW > p.width || paddedH > p.height {
		return false
	}

	for i := range p.shelves {
		shelf := &p.shelves[i]

		if shelf.x+paddedW > p.width {
			continue
		}
		if h <= shelf.height {
			return true
		}
		if i == len(p.shelves)-1 && shelf.y+paddedH <= p.height {
			return true
		}
	}

	newY := 0
	if len(p.shelves) > 0 {
		last := p.shelves[len(p.shelves)-1]
		newY = last.y + last.height + p.padding
	}
	return newY+paddedH <= p.height
}

// utilization returns the fraction of atlas space used (0.0 to 1.0).
func (p *shelfPacker) utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	totalArea := p.width * p.height
	return float64(p.usedArea) / float64(totalArea)
}

// bottom returns the y coordinate just below the lowest shelf.
func (p *shelfPacker) bottom() int {
	if len(p.shelves) == 0 {
		return 0
	}
	last := p.shelves[len(p.shelves)-1]
	return last.y + last.height + p.padding
}
