// Package glyphkit provides the core of an immediate-mode text-rendering
// surface: a glyph metrics cache with texture-atlas packing and a
// pointer-driven text selection engine.
//
// # Overview
//
// The module is split into small packages:
//
//   - atlas: shared texture atlas with shelf rectangle packing. Multiple
//     font faces write glyph coverage into one atlas; access is serialized
//     per allocate-and-write operation.
//   - font: per-face glyph metrics cache (Face), ordered fallback sets
//     (FaceSet), and the font backend contract with sfnt and
//     go-text/typesetting implementations.
//   - cursor: character-offset and paragraph-relative cursor positions and
//     ranges. Paragraph-relative positions survive re-wrapping when the
//     layout width changes.
//   - selection: word/line boundary classification and the pointer
//     interaction state machine (click, double-click, drag) that turns
//     gestures into cursor ranges.
//
// The line-wrapped text layout ("galley") and the rendering pipeline are
// external collaborators; see selection.Galley for the consumed contract.
//
// # Units
//
// All positions, sizes and advances are in points unless a name says
// otherwise. Conversion to physical pixels goes through the
// pixels-per-point ratio carried by each font face.
//
// # Quick Start
//
//	a := atlas.New(atlas.Config{Width: 1024, Height: 64})
//	face := font.NewFace(a, font.FaceConfig{
//		Name:           "body",
//		Backend:        backend, // e.g. font.NewSFNTBackend(ttf)
//		ScaleInPixels:  24,
//		PixelsPerPoint: 2,
//	})
//	set := font.NewFaceSet(face)
//	g := set.Glyph('A') // rasterized into the atlas on first use
package glyphkit
