package bitfont

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
)

var defaultFace = sync.OnceValue(NewFace)

// DrawNumber renders v onto dst starting at dot (the top-left corner of the
// first glyph cell), taking colors from src. It returns the rectangle the
// glyphs covered and the decode status. Decoding is best effort: even on a
// non-zero status the glyphs that did decode are drawn, matching what Decode
// leaves in the buffer.
func DrawNumber(dst draw.Image, dot image.Point, v float64, src image.Image) (image.Rectangle, Status) {
	buf, status := Decode(v)
	f := defaultFace()

	var bounds image.Rectangle
	x := dot.X
	for _, g := range buf {
		if g == Terminator {
			break
		}
		dr := image.Rect(x, dot.Y, x+Width, dot.Y+Height)
		draw.DrawMask(dst, dr, src, image.Point{}, f.masks[g], image.Point{}, draw.Over)
		bounds = bounds.Union(dr)
		x += Width
	}
	return bounds, status
}
