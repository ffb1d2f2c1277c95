package model

// Grid is a dense 3-D array stored in (z, y, x) order.
type Grid[T any] struct {
	Data []T
	Size [3]int
}

// NewGrid allocates a zeroed grid with the given extents.
func NewGrid[T any](zs, ys, xs int) Grid[T] {
	return Grid[T]{
		Data: make([]T, zs*ys*xs),
		Size: [3]int{zs, ys, xs},
	}
}

// Len returns the number of cells.
func (g Grid[T]) Len() int { return len(g.Data) }

// At returns the cell at (z, y, x).
func (g Grid[T]) At(z, y, x int) T {
	return g.Data[(z*g.Size[1]+y)*g.Size[2]+x]
}

// Set stores v at (z, y, x).
func (g *Grid[T]) Set(z, y, x int, v T) {
	g.Data[(z*g.Size[1]+y)*g.Size[2]+x] = v
}

// Clone returns a deep copy of the grid.
func (g Grid[T]) Clone() Grid[T] {
	out := Grid[T]{
		Data: make([]T, len(g.Data)),
		Size: g.Size,
	}
	copy(out.Data, g.Data)
	return out
}

// consistent reports whether the grid extents match (zs, ys, xs) and the
// backing slice has exactly one cell per position.
func (g Grid[T]) consistent(zs, ys, xs int) bool {
	return g.Size == [3]int{zs, ys, xs} && len(g.Data) == zs*ys*xs
}

// Shoebox holds the pixel data surrounding a single reflection: the raw
// counts, the per-pixel mask and the modelled background, all bounded by
// BBox on the panel identified by Panel.
type Shoebox struct {
	Panel      uint64
	BBox       Int6
	Data       Grid[float64]
	Mask       Grid[int32]
	Background Grid[float64]
}

// Allocate sizes the data, mask and background grids from the bounding box,
// discarding any previous contents.
func (s *Shoebox) Allocate() {
	zs, ys, xs := s.BBox.ZSize(), s.BBox.YSize(), s.BBox.XSize()
	s.Data = NewGrid[float64](zs, ys, xs)
	s.Mask = NewGrid[int32](zs, ys, xs)
	s.Background = NewGrid[float64](zs, ys, xs)
}

// Consistent reports whether all three grids match the bounding box extents.
func (s Shoebox) Consistent() bool {
	zs, ys, xs := s.BBox.ZSize(), s.BBox.YSize(), s.BBox.XSize()
	return s.BBox.Valid() &&
		s.Data.consistent(zs, ys, xs) &&
		s.Mask.consistent(zs, ys, xs) &&
		s.Background.consistent(zs, ys, xs)
}
