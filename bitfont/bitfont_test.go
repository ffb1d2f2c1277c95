package bitfont

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	tests := []struct {
		b    byte
		want Index
		ok   bool
	}{
		{'0', 0, true},
		{'7', 7, true},
		{'9', 9, true},
		{'.', Point, true},
		{'e', Exponent, true},
		{'+', Plus, true},
		{'-', Minus, true},
		{' ', Space, true},
		{'x', 0, false},
		{'E', 0, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		got, ok := IndexOf(tt.b)
		assert.Equal(t, tt.ok, ok, "byte %q", tt.b)
		if tt.ok {
			assert.Equal(t, tt.want, got, "byte %q", tt.b)
		}
	}
}

func TestGlyphsPacking(t *testing.T) {
	gs := Glyphs()

	// Row packing follows the string art, column 0 in the low bit.
	for g := range glyphArt {
		for r, line := range glyphArt[g] {
			for c := 0; c < Width; c++ {
				want := line[c] == 'X'
				assert.Equal(t, want, gs[g].At(r, c), "glyph %d row %d col %d", g, r, c)
			}
		}
	}
}

func TestGlyphShapes(t *testing.T) {
	gs := Glyphs()

	// Glyph 1 has its serif in row 1: " XXX   ".
	one := gs[1]
	assert.False(t, one.At(1, 0))
	assert.True(t, one.At(1, 1))
	assert.True(t, one.At(1, 2))
	assert.True(t, one.At(1, 3))
	assert.False(t, one.At(1, 4))

	// Top and bottom rows of every glyph are blank.
	for g := range gs {
		assert.EqualValues(t, 0, gs[g].Rows[0], "glyph %d top row", g)
		assert.EqualValues(t, 0, gs[g].Rows[Height-1], "glyph %d bottom row", g)
	}

	// Space and terminator are fully blank; digits are not.
	for r := 0; r < Height; r++ {
		assert.EqualValues(t, 0, gs[Space].Rows[r])
		assert.EqualValues(t, 0, gs[Terminator].Rows[r])
	}
	require.NotEqual(t, gs[3], gs[8])
	require.NotEqual(t, gs[0], gs[Space])
}
