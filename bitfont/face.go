package bitfont

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Baseline split of the 14px glyph cell. The digit bodies sit in rows 1-12,
// so the baseline runs under row 11.
const (
	ascent  = 12
	descent = 2
)

// Face exposes the number font as a golang.org/x/image/font.Face so it can
// be used with font.Drawer and the rest of the standard text machinery. It
// covers exactly the runes the font has glyphs for: '0'-'9', '.', 'e', '+',
// '-' and ' '.
//
// A Face is immutable after construction and safe for concurrent use.
type Face struct {
	masks [NumGlyphs]*image.Alpha
}

var _ font.Face = (*Face)(nil)

// NewFace builds the per-glyph alpha masks up front.
func NewFace() *Face {
	f := &Face{}
	gs := Glyphs()
	for g := range gs {
		m := image.NewAlpha(image.Rect(0, 0, Width, Height))
		for r := 0; r < Height; r++ {
			for c := 0; c < Width; c++ {
				if gs[g].At(r, c) {
					m.SetAlpha(c, r, color.Alpha{A: 0xff})
				}
			}
		}
		f.masks[g] = m
	}
	return f
}

// Close implements font.Face. It is a no-op.
func (f *Face) Close() error { return nil }

// Glyph implements font.Face.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	g, ok := indexOfRune(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Floor()
	y := dot.Y.Floor() - ascent
	dr := image.Rect(x, y, x+Width, y+Height)
	return dr, f.masks[g], image.Point{}, fixed.I(Width), true
}

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	if _, ok := indexOfRune(r); !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	return fixed.R(0, -ascent, Width, descent), fixed.I(Width), true
}

// GlyphAdvance implements font.Face. Every glyph advances by the fixed cell
// width.
func (f *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if _, ok := indexOfRune(r); !ok {
		return 0, false
	}
	return fixed.I(Width), true
}

// Kern implements font.Face. The font is strictly monospaced.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:  fixed.I(Height),
		Ascent:  fixed.I(ascent),
		Descent: fixed.I(descent),
	}
}

func indexOfRune(r rune) (Index, bool) {
	if r < 0 || r > 0x7f {
		return 0, false
	}
	return IndexOf(byte(r))
}
