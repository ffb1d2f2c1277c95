package column

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffrax/refltab/model"
)

func TestSetGetRoundTrip(t *testing.T) {
	tbl := NewTable(3)

	require.NoError(t, tbl.SetDoubles("intensity", []float64{1.5, 2.5, 3.5}))
	require.NoError(t, tbl.SetUInts("panel", []uint64{0, 1, 0}))
	require.NoError(t, tbl.SetVec3s("s1", []model.Vec3{{X: 1}, {Y: 1}, {Z: 1}}))
	require.NoError(t, tbl.SetInt6s("bbox", []model.Int6{{0, 1, 0, 1, 0, 1}, {}, {}}))

	assert.Equal(t, 3, tbl.NRows())
	assert.Equal(t, 4, tbl.NCols())
	assert.Equal(t, []string{"bbox", "intensity", "panel", "s1"}, tbl.Keys())

	d, err := tbl.Doubles("intensity")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, d)

	v, err := tbl.Vec3s("s1")
	require.NoError(t, err)
	assert.Equal(t, model.Vec3{X: 1}, v[0])

	kind, ok := tbl.KindOf("panel")
	require.True(t, ok)
	assert.Equal(t, KindUInt, kind)
}

func TestAccessorsReturnLiveSlice(t *testing.T) {
	tbl := NewTable(2)
	require.NoError(t, tbl.SetUInts("flags", []uint64{0, 0}))

	f, err := tbl.UInts("flags")
	require.NoError(t, err)
	f[1] = 8

	again, err := tbl.UInts("flags")
	require.NoError(t, err)
	assert.Equal(t, uint64(8), again[1])
}

func TestKindMismatch(t *testing.T) {
	tbl := NewTable(1)
	require.NoError(t, tbl.SetDoubles("x", []float64{1}))

	_, err := tbl.Ints("x")
	var ke *KindError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "x", ke.Column)
	assert.Equal(t, KindInt, ke.Want)
	assert.Equal(t, KindDouble, ke.Got)
}

func TestColumnNotFound(t *testing.T) {
	tbl := NewTable(1)
	_, err := tbl.Doubles("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLengthMismatch(t *testing.T) {
	tbl := NewTable(3)
	err := tbl.SetDoubles("x", []float64{1, 2})
	var le *LengthError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Want)
	assert.Equal(t, 2, le.Got)
}

func TestFirstColumnFixesRowCount(t *testing.T) {
	tbl := NewTable(0)
	require.NoError(t, tbl.SetInts("id", []int64{1, 2, 3, 4}))
	assert.Equal(t, 4, tbl.NRows())

	err := tbl.SetInts("other", []int64{1})
	assert.Error(t, err)
}

func TestResize(t *testing.T) {
	tbl := NewTable(2)
	require.NoError(t, tbl.SetDoubles("x", []float64{1, 2}))

	tbl.Resize(4)
	assert.Equal(t, 4, tbl.NRows())
	d, err := tbl.Doubles("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0, 0}, d)

	tbl.Resize(1)
	d, err = tbl.Doubles("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, d)
}

func TestExtend(t *testing.T) {
	a := NewTable(2)
	require.NoError(t, a.SetInts("id", []int64{1, 2}))
	require.NoError(t, a.SetDoubles("x", []float64{0.1, 0.2}))

	b := NewTable(1)
	require.NoError(t, b.SetInts("id", []int64{3}))
	require.NoError(t, b.SetDoubles("x", []float64{0.3}))

	require.NoError(t, a.Extend(b))
	assert.Equal(t, 3, a.NRows())

	ids, err := a.Ints("id")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestExtendRejectsMismatchedColumns(t *testing.T) {
	a := NewTable(1)
	require.NoError(t, a.SetInts("id", []int64{1}))

	b := NewTable(1)
	require.NoError(t, b.SetDoubles("id", []float64{1}))

	assert.Error(t, a.Extend(b))

	c := NewTable(1)
	require.NoError(t, c.SetInts("other", []int64{1}))
	assert.Error(t, a.Extend(c))
}

func TestSelect(t *testing.T) {
	tbl := NewTable(3)
	require.NoError(t, tbl.SetInts("id", []int64{10, 20, 30}))
	require.NoError(t, tbl.SetDoubles("x", []float64{1, 2, 3}))

	sub, err := tbl.Select([]uint32{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.NRows())

	ids, err := sub.Ints("id")
	require.NoError(t, err)
	assert.Equal(t, []int64{30, 10, 30}, ids)
}

func TestSelectOutOfRange(t *testing.T) {
	tbl := NewTable(2)
	require.NoError(t, tbl.SetInts("id", []int64{1, 2}))

	_, err := tbl.Select([]uint32{0, 2})
	var re *RowRangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, uint32(2), re.Row)
	assert.Equal(t, 2, re.NRows)
}

func TestCloneIsIndependent(t *testing.T) {
	tbl := NewTable(2)
	require.NoError(t, tbl.SetDoubles("x", []float64{1, 2}))

	c := tbl.Clone()
	cd, err := c.Doubles("x")
	require.NoError(t, err)
	cd[0] = 99

	d, err := tbl.Doubles("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d[0])
}

func TestDelete(t *testing.T) {
	tbl := NewTable(1)
	require.NoError(t, tbl.SetInts("id", []int64{1}))
	tbl.Delete("id")
	assert.False(t, tbl.Has("id"))
	tbl.Delete("id") // no-op
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Shoebox", KindShoebox.String())
	assert.Equal(t, "Invalid", KindInvalid.String())
	assert.Equal(t, "Vec3", KindVec3.String())
}
