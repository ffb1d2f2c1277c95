package refltab

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Selection is a set of row indices backed by a compressed bitmap. It
// supports composing flag queries (And/Or) before materializing a subset
// with Table.Select.
type Selection struct {
	rb *roaring.Bitmap
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{rb: roaring.New()}
}

// Add adds a row index to the selection.
func (s *Selection) Add(row uint32) {
	s.rb.Add(row)
}

// Remove removes a row index from the selection.
func (s *Selection) Remove(row uint32) {
	s.rb.Remove(row)
}

// Contains checks if a row index is in the selection.
func (s *Selection) Contains(row uint32) bool {
	return s.rb.Contains(row)
}

// IsEmpty returns true if the selection is empty.
func (s *Selection) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of selected rows.
func (s *Selection) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the selection.
func (s *Selection) Clone() *Selection {
	return &Selection{rb: s.rb.Clone()}
}

// And intersects the selection with another in place.
func (s *Selection) And(other *Selection) {
	s.rb.And(other.rb)
}

// Or unions the selection with another in place.
func (s *Selection) Or(other *Selection) {
	s.rb.Or(other.rb)
}

// ToArray returns the selected row indices in ascending order.
func (s *Selection) ToArray() []uint32 {
	return s.rb.ToArray()
}

// Iterator returns an iterator over the selected rows in ascending order.
func (s *Selection) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
