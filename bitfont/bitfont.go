package bitfont

import "sync"

// Font dimensions. Every glyph occupies the same 14x7 pixel cell, padding
// included, so glyphs can be blitted on a fixed grid.
const (
	// Height is the glyph cell height in pixels.
	Height = 14
	// Width is the glyph cell width in pixels.
	Width = 7
	// NumGlyphs is the number of glyphs in the font.
	NumGlyphs = 16
)

// Index selects a glyph. The digits 0-9 are their own index; the remaining
// glyphs follow.
type Index uint8

const (
	// Point is the decimal point glyph ('.').
	Point Index = iota + 10
	// Exponent is the exponent marker glyph ('e').
	Exponent
	// Plus is the plus sign glyph ('+').
	Plus
	// Minus is the minus sign glyph ('-').
	Minus
	// Space is the blank glyph (' ').
	Space
	// Terminator is the end-of-string sentinel. It renders blank.
	Terminator
)

// Glyph is one bitmap character. Bit c of Rows[r] is the pixel at row r,
// column c.
type Glyph struct {
	Rows [Height]uint8
}

// At reports whether the pixel at (row, col) is set.
func (g Glyph) At(row, col int) bool {
	return g.Rows[row]>>col&1 == 1
}

// IndexOf maps a formatted-number character to its glyph index.
func IndexOf(b byte) (Index, bool) {
	switch {
	case b >= '0' && b <= '9':
		return Index(b - '0'), true
	case b == '.':
		return Point, true
	case b == 'e':
		return Exponent, true
	case b == '+':
		return Plus, true
	case b == '-':
		return Minus, true
	case b == ' ':
		return Space, true
	}
	return 0, false
}

// Glyphs returns the font's glyph table. The table is packed from the
// string art on first use and is immutable afterwards; reads need no
// synchronization once it is built.
var Glyphs = sync.OnceValue(func() *[NumGlyphs]Glyph {
	var out [NumGlyphs]Glyph
	for g := range glyphArt {
		for r, line := range glyphArt[g] {
			out[g].Rows[r] = packRow(line)
		}
	}
	return &out
})

// packRow packs up to Width 'X' cells into a row bitmask, column 0 in the
// low bit.
func packRow(line string) uint8 {
	var bits uint8
	for c := 0; c < len(line) && c < Width; c++ {
		if line[c] == 'X' {
			bits |= 1 << c
		}
	}
	return bits
}

// glyphArt is the font image, one block per glyph index.
var glyphArt = [NumGlyphs][Height]string{
	{ // 0
		"       ",
		"  XXXX ",
		" XXXXXX",
		" XX  XX",
		" X   XX",
		" X  X X",
		" X  X X",
		" X XX X",
		" X X  X",
		" X X  X",
		" XX  XX",
		" XXXXXX",
		"  XXXX ",
		"       ",
	},
	{ // 1
		"       ",
		" XXX   ",
		" XXX   ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		" XXXXX ",
		" XXXXX ",
		"       ",
	},
	{ // 2
		"       ",
		"   XX  ",
		"  XXXX ",
		" XX  XX",
		" X   XX",
		"     XX",
		"    XX ",
		"    XX ",
		"   XX  ",
		"   XX  ",
		"  XX   ",
		"  XXXXX",
		" XXXXXX",
		"       ",
	},
	{ // 3
		"       ",
		"   XX  ",
		"  XXXX ",
		" XX  XX",
		" X   XX",
		"     XX",
		"    XX ",
		"   XXX ",
		"     XX",
		"     XX",
		" X   XX",
		" XXXXX ",
		"  XXX  ",
		"       ",
	},
	{ // 4
		"       ",
		"     X ",
		"    XX ",
		"    XX ",
		"   XXX ",
		"   X X ",
		"  XX X ",
		"  X  X ",
		" XX  X ",
		" XXXXXX",
		"     X ",
		"     X ",
		"     X ",
		"       ",
	},
	{ // 5
		"       ",
		" XXXXX ",
		" XXXXX ",
		" X     ",
		" X     ",
		" X     ",
		" XXXXX ",
		" XXXXXX",
		"     XX",
		"      X",
		" XX   X",
		" XXXXXX",
		"  XXXX ",
		"       ",
	},
	{ // 6
		"       ",
		"   XX  ",
		"  XXXX ",
		" XX  XX",
		" XX    ",
		" XX    ",
		" XXXXX ",
		" XXXXXX",
		" XX  XX",
		" XX   X",
		" XX   X",
		" XXXXXX",
		"  XXXX ",
		"       ",
	},
	{ // 7
		"       ",
		" XXXXXX",
		" XXXXXX",
		"     XX",
		"     XX",
		"     XX",
		"    XX ",
		"    XX ",
		"   XX  ",
		"   XX  ",
		"  XX   ",
		"  XX   ",
		" XX    ",
		"       ",
	},
	{ // 8
		"       ",
		"   XX  ",
		"  XXXX ",
		" XX  XX",
		" XX  XX",
		" XX  XX",
		"  XXXX ",
		"  XXXX ",
		" XX  XX",
		" XX  XX",
		" XX  XX",
		"  XXXX ",
		"   XX  ",
		"       ",
	},
	{ // 9
		"       ",
		"   XX  ",
		"  XXXX ",
		" XX  XX",
		" XX  XX",
		" XX  XX",
		" XXXXXX",
		"  XXXXX",
		"     XX",
		"     XX",
		"    XX ",
		" XXXXX ",
		"  XXX  ",
		"       ",
	},
	{ // point
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"   XX  ",
		"   XX  ",
		"   XX  ",
		"       ",
		"       ",
	},
	{ // e
		"       ",
		"       ",
		"  XXXX ",
		" XXXXXX",
		" XX  XX",
		" XX  XX",
		" XXXXXX",
		" XXXXX ",
		" XX    ",
		" XX    ",
		" XXX XX",
		"  XXXX ",
		"   XX  ",
		"       ",
	},
	{ // plus
		"       ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		" XXXXX ",
		" XXXXX ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		"   X   ",
		"       ",
	},
	{ // minus
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		" XXXXX ",
		" XXXXX ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
	},
	{ // space
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
	},
	{ // terminator
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
		"       ",
	},
}
