package selection

import (
	"strings"

	"github.com/glyphkit/glyphkit"
	"github.com/glyphkit/glyphkit/cursor"
)

// fakeGalley is a fixed-pitch layout for tests: every character is one
// unit wide, rows are one unit tall, and paragraphs wrap hard at
// wrapWidth characters (no wrapping when wrapWidth <= 0).
type fakeGalley struct {
	text string
	rows []fakeRow
}

type fakeRow struct {
	paragraph int // paragraph this row belongs to
	parOffset int // char offset of the row start within the paragraph
	ccStart   int // char offset of the row start within the whole text
	length    int // chars in the row, excluding any trailing newline
}

func newFakeGalley(text string, wrapWidth int) *fakeGalley {
	g := &fakeGalley{text: text}
	cc := 0
	for pi, p := range strings.Split(text, "\n") {
		chars := []rune(p)
		width := wrapWidth
		if width <= 0 {
			width = len(chars) + 1
		}
		if len(chars) == 0 {
			g.rows = append(g.rows, fakeRow{paragraph: pi, ccStart: cc})
		}
		for off := 0; off < len(chars); off += width {
			n := min(width, len(chars)-off)
			g.rows = append(g.rows, fakeRow{
				paragraph: pi,
				parOffset: off,
				ccStart:   cc + off,
				length:    n,
			})
		}
		cc += len(chars) + 1
	}
	return g
}

func (g *fakeGalley) numChars() int {
	last := g.rows[len(g.rows)-1]
	return last.ccStart + last.length
}

// rowAt finds the row containing the character offset. An offset at the
// seam between two wrapped rows belongs to either; preferNext picks the
// start of the later row.
func (g *fakeGalley) rowAt(index int, preferNext bool) int {
	for i, r := range g.rows {
		if index < r.ccStart || index > r.ccStart+r.length {
			continue
		}
		if index == r.ccStart+r.length && preferNext && i+1 < len(g.rows) &&
			g.rows[i+1].paragraph == r.paragraph && g.rows[i+1].ccStart == index {
			continue
		}
		return i
	}
	return len(g.rows) - 1
}

func (g *fakeGalley) FromCCursor(c cursor.CCursor) cursor.Cursor {
	index := min(max(c.Index, 0), g.numChars())
	ri := g.rowAt(index, c.PreferNextRow)
	r := g.rows[ri]
	return cursor.Cursor{
		CCursor: cursor.CCursor{Index: index, PreferNextRow: c.PreferNextRow},
		RCursor: cursor.RCursor{Row: ri, Column: index - r.ccStart},
		PCursor: cursor.PCursor{
			Paragraph:     r.paragraph,
			Offset:        r.parOffset + index - r.ccStart,
			PreferNextRow: c.PreferNextRow,
		},
	}
}

func (g *fakeGalley) FromPCursor(p cursor.PCursor) cursor.Cursor {
	for _, r := range g.rows {
		if r.paragraph != p.Paragraph {
			continue
		}
		if p.Offset <= r.parOffset+r.length {
			off := max(p.Offset-r.parOffset, 0)
			return g.FromCCursor(cursor.CCursor{
				Index:         r.ccStart + off,
				PreferNextRow: p.PreferNextRow,
			})
		}
	}
	return g.FromCCursor(cursor.CCursor{Index: g.numChars(), PreferNextRow: p.PreferNextRow})
}

func (g *fakeGalley) PosFromCursor(c cursor.Cursor) glyphkit.Rect {
	cur := g.FromCCursor(c.CCursor)
	pos := glyphkit.V2(float32(cur.RCursor.Column), float32(cur.RCursor.Row))
	return glyphkit.Rect{Min: pos, Max: pos.Add(glyphkit.V2(0, 1))}
}

func (g *fakeGalley) Text() string { return g.text }

// cursorAt resolves a character offset through the galley, as the caller
// of PointerInteraction would for a pointer position.
func (g *fakeGalley) cursorAt(index int) cursor.Cursor {
	return g.FromCCursor(cursor.NewCCursor(index))
}
