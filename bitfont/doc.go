// Package bitfont provides a fixed-size 14x7 bitmap number font and helpers
// for turning float64 values into glyph sequences and raster output.
//
// The font covers sixteen glyphs: the digits 0-9, decimal point, exponent
// marker 'e', plus, minus, space and an internal terminator. Decode and
// DecodeString map a formatted number onto a fixed 15-slot glyph buffer;
// Face adapts the font to golang.org/x/image/font.Face so it plugs into the
// standard drawing machinery, and DrawNumber is a one-call renderer on top
// of both.
//
//	img := image.NewRGBA(image.Rect(0, 0, 128, 16))
//	bitfont.DrawNumber(img, image.Pt(2, 1), 3.14, image.Black)
package bitfont
