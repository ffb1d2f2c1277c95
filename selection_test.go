package refltab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionBasics(t *testing.T) {
	s := NewSelection()
	assert.True(t, s.IsEmpty())

	s.Add(3)
	s.Add(7)
	s.Add(3)
	assert.Equal(t, uint64(2), s.Cardinality())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))

	s.Remove(3)
	assert.False(t, s.Contains(3))
	assert.Equal(t, []uint32{7}, s.ToArray())
}

func TestSelectionAndOr(t *testing.T) {
	a := NewSelection()
	a.Add(1)
	a.Add(2)
	a.Add(3)

	b := NewSelection()
	b.Add(2)
	b.Add(4)

	u := a.Clone()
	u.Or(b)
	assert.Equal(t, []uint32{1, 2, 3, 4}, u.ToArray())

	i := a.Clone()
	i.And(b)
	assert.Equal(t, []uint32{2}, i.ToArray())

	// The originals are untouched.
	assert.Equal(t, []uint32{1, 2, 3}, a.ToArray())
}

func TestSelectionIterator(t *testing.T) {
	s := NewSelection()
	for _, r := range []uint32{9, 1, 5} {
		s.Add(r)
	}

	var got []uint32
	for r := range s.Iterator() {
		got = append(got, r)
	}
	require.Equal(t, []uint32{1, 5, 9}, got)

	// Early exit.
	for r := range s.Iterator() {
		assert.Equal(t, uint32(1), r)
		break
	}
}
