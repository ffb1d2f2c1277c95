package bitfont

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestFaceGlyphAdvance(t *testing.T) {
	f := NewFace()

	adv, ok := f.GlyphAdvance('7')
	require.True(t, ok)
	assert.Equal(t, fixed.I(Width), adv)

	_, ok = f.GlyphAdvance('x')
	assert.False(t, ok)

	_, ok = f.GlyphAdvance('é')
	assert.False(t, ok)
}

func TestFaceGlyph(t *testing.T) {
	f := NewFace()

	dot := fixed.P(10, 20)
	dr, mask, maskp, adv, ok := f.Glyph(dot, '1')
	require.True(t, ok)
	assert.Equal(t, image.Rect(10, 20-ascent, 10+Width, 20-ascent+Height), dr)
	assert.Equal(t, image.Point{}, maskp)
	assert.Equal(t, fixed.I(Width), adv)

	// The mask mirrors the glyph bitmap.
	a, isAlpha := mask.(*image.Alpha)
	require.True(t, isAlpha)
	one := Glyphs()[1]
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			want := uint8(0)
			if one.At(r, c) {
				want = 0xff
			}
			assert.Equal(t, want, a.AlphaAt(c, r).A, "row %d col %d", r, c)
		}
	}

	_, _, _, _, ok = f.Glyph(dot, 'q')
	assert.False(t, ok)
}

func TestFaceMetrics(t *testing.T) {
	f := NewFace()
	m := f.Metrics()
	assert.Equal(t, fixed.I(Height), m.Height)
	assert.Equal(t, fixed.I(ascent), m.Ascent)
	assert.Equal(t, fixed.I(descent), m.Descent)

	bounds, adv, ok := f.GlyphBounds('.')
	require.True(t, ok)
	assert.Equal(t, fixed.R(0, -ascent, Width, descent), bounds)
	assert.Equal(t, fixed.I(Width), adv)

	assert.Equal(t, fixed.Int26_6(0), f.Kern('1', '2'))
	assert.NoError(t, f.Close())
}

func TestDrawNumber(t *testing.T) {
	dst := image.NewGray(image.Rect(0, 0, 64, 16))
	bounds, status := DrawNumber(dst, image.Pt(1, 1), 3.14, image.White)
	require.Equal(t, StatusOK, status)

	// "3.14" is four glyphs wide.
	assert.Equal(t, image.Rect(1, 1, 1+4*Width, 1+Height), bounds)

	// Spot check: glyph '3' at cell origin (1,1), glyph '1' in the third cell.
	three := Glyphs()[3]
	one := Glyphs()[1]
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			want := uint8(0)
			if three.At(r, c) {
				want = 0xff
			}
			assert.Equal(t, want, dst.GrayAt(1+c, 1+r).Y, "glyph 3 row %d col %d", r, c)

			want = 0
			if one.At(r, c) {
				want = 0xff
			}
			assert.Equal(t, want, dst.GrayAt(1+2*Width+c, 1+r).Y, "glyph 1 row %d col %d", r, c)
		}
	}
}

func TestDrawNumberEmptyOutsideGlyphs(t *testing.T) {
	dst := image.NewGray(image.Rect(0, 0, 64, 16))
	bounds, status := DrawNumber(dst, image.Pt(0, 0), 7, image.White)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, image.Rect(0, 0, Width, Height), bounds)

	// Nothing painted beyond the returned bounds.
	for y := 0; y < 16; y++ {
		for x := Width; x < 64; x++ {
			assert.EqualValues(t, 0, dst.GrayAt(x, y).Y, "x %d y %d", x, y)
		}
	}
}
