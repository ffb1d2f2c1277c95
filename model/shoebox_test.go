package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt6Sizes(t *testing.T) {
	b := Int6{2, 10, 3, 7, 0, 5}
	assert.Equal(t, 8, b.XSize())
	assert.Equal(t, 4, b.YSize())
	assert.Equal(t, 5, b.ZSize())
	assert.True(t, b.Valid())

	assert.False(t, Int6{5, 2, 0, 1, 0, 1}.Valid())
}

func TestGridIndexing(t *testing.T) {
	g := NewGrid[float64](2, 3, 4)
	require.Equal(t, 24, g.Len())

	g.Set(1, 2, 3, 42.0)
	assert.Equal(t, 42.0, g.At(1, 2, 3))
	assert.Equal(t, 42.0, g.Data[len(g.Data)-1])

	g.Set(0, 0, 0, 7.0)
	assert.Equal(t, 7.0, g.Data[0])
}

func TestGridClone(t *testing.T) {
	g := NewGrid[int32](1, 2, 2)
	g.Set(0, 1, 1, 9)

	c := g.Clone()
	c.Set(0, 0, 0, 5)

	assert.Equal(t, int32(9), g.At(0, 1, 1))
	assert.Equal(t, int32(0), g.At(0, 0, 0))
	assert.Equal(t, int32(5), c.At(0, 0, 0))
}

func TestShoeboxAllocate(t *testing.T) {
	s := Shoebox{BBox: Int6{0, 4, 0, 3, 0, 2}}
	assert.False(t, s.Consistent())

	s.Allocate()
	require.True(t, s.Consistent())
	assert.Equal(t, 24, s.Data.Len())
	assert.Equal(t, 24, s.Mask.Len())
	assert.Equal(t, 24, s.Background.Len())
}

func TestShoeboxConsistentRejectsMismatch(t *testing.T) {
	s := Shoebox{BBox: Int6{0, 4, 0, 3, 0, 2}}
	s.Allocate()

	s.BBox = Int6{0, 5, 0, 3, 0, 2}
	assert.False(t, s.Consistent())
}
