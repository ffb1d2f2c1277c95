package column

import (
	"fmt"
	"sort"

	"github.com/diffrax/refltab/model"
)

// Table is an in-memory column store keyed by column name. Every column is a
// homogeneously typed sequence and all columns share the same row count. A
// row has no stored identity beyond its index 0..NRows()-1.
//
// Tables provide no locking; callers synchronize mutation.
type Table struct {
	cols  map[string]Column
	nrows int
}

// NewTable creates an empty table with the given row count.
func NewTable(nrows int) *Table {
	return &Table{cols: make(map[string]Column), nrows: nrows}
}

// NRows returns the number of rows.
func (t *Table) NRows() int { return t.nrows }

// NCols returns the number of columns.
func (t *Table) NCols() int { return len(t.cols) }

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool { return t.nrows == 0 }

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// KindOf returns the element kind of the named column.
func (t *Table) KindOf(name string) (Kind, bool) {
	c, ok := t.cols[name]
	if !ok {
		return KindInvalid, false
	}
	return c.Kind(), true
}

// Keys returns the column names in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.cols))
	for name := range t.cols {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Delete removes the named column. Deleting an absent column is a no-op.
func (t *Table) Delete(name string) {
	delete(t.cols, name)
}

// Resize grows every column with zero values or truncates every column to n
// rows.
func (t *Table) Resize(n int) {
	for _, c := range t.cols {
		c.Resize(n)
	}
	t.nrows = n
}

// Extend appends the rows of other to t. The two tables must declare the
// same column names with the same kinds.
func (t *Table) Extend(other *Table) error {
	if len(t.cols) != len(other.cols) {
		return fmt.Errorf("cannot extend: %d columns vs %d", len(t.cols), len(other.cols))
	}
	for name, c := range t.cols {
		o, ok := other.cols[name]
		if !ok {
			return fmt.Errorf("cannot extend: %q: %w", name, ErrNotFound)
		}
		if o.Kind() != c.Kind() {
			return &KindError{Column: name, Want: c.Kind(), Got: o.Kind()}
		}
	}
	for name, c := range t.cols {
		if err := c.extend(other.cols[name]); err != nil {
			return fmt.Errorf("cannot extend %q: %w", name, err)
		}
	}
	t.nrows += other.nrows
	return nil
}

// Select returns a new table holding the chosen rows of every column, in
// order. Indices may repeat.
func (t *Table) Select(rows []uint32) (*Table, error) {
	for _, r := range rows {
		if int(r) >= t.nrows {
			return nil, &RowRangeError{Row: r, NRows: t.nrows}
		}
	}
	out := NewTable(len(rows))
	for name, c := range t.cols {
		out.cols[name] = c.Select(rows)
	}
	return out, nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := NewTable(t.nrows)
	for name, c := range t.cols {
		out.cols[name] = c.Clone()
	}
	return out
}

// set creates or replaces a column. The table takes ownership of v; it is
// not copied. The first column assigned to a zero-row, zero-column table
// fixes the row count.
func set[T any](t *Table, name string, kind Kind, v []T) error {
	if t.nrows == 0 && len(t.cols) == 0 {
		t.nrows = len(v)
	} else if len(v) != t.nrows {
		return &LengthError{Column: name, Want: t.nrows, Got: len(v)}
	}
	t.cols[name] = &data[T]{kind: kind, v: v}
	return nil
}

// get returns the live backing slice of a column. Mutations through the
// returned slice are visible in the table.
func get[T any](t *Table, name string, kind Kind) ([]T, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	tc, ok := c.(*data[T])
	if !ok || tc.kind != kind {
		return nil, &KindError{Column: name, Want: kind, Got: c.Kind()}
	}
	return tc.v, nil
}

// SetBools creates or replaces a bool column.
func (t *Table) SetBools(name string, v []bool) error { return set(t, name, KindBool, v) }

// SetInts creates or replaces an int64 column.
func (t *Table) SetInts(name string, v []int64) error { return set(t, name, KindInt, v) }

// SetUInts creates or replaces a uint64 column.
func (t *Table) SetUInts(name string, v []uint64) error { return set(t, name, KindUInt, v) }

// SetDoubles creates or replaces a float64 column.
func (t *Table) SetDoubles(name string, v []float64) error { return set(t, name, KindDouble, v) }

// SetStrings creates or replaces a string column.
func (t *Table) SetStrings(name string, v []string) error { return set(t, name, KindString, v) }

// SetVec2s creates or replaces a Vec2 column.
func (t *Table) SetVec2s(name string, v []model.Vec2) error { return set(t, name, KindVec2, v) }

// SetVec3s creates or replaces a Vec3 column.
func (t *Table) SetVec3s(name string, v []model.Vec3) error { return set(t, name, KindVec3, v) }

// SetInt3s creates or replaces an Int3 column.
func (t *Table) SetInt3s(name string, v []model.Int3) error { return set(t, name, KindInt3, v) }

// SetInt6s creates or replaces an Int6 column.
func (t *Table) SetInt6s(name string, v []model.Int6) error { return set(t, name, KindInt6, v) }

// SetShoeboxes creates or replaces a Shoebox column.
func (t *Table) SetShoeboxes(name string, v []model.Shoebox) error {
	return set(t, name, KindShoebox, v)
}

// Bools returns the backing slice of a bool column.
func (t *Table) Bools(name string) ([]bool, error) { return get[bool](t, name, KindBool) }

// Ints returns the backing slice of an int64 column.
func (t *Table) Ints(name string) ([]int64, error) { return get[int64](t, name, KindInt) }

// UInts returns the backing slice of a uint64 column.
func (t *Table) UInts(name string) ([]uint64, error) { return get[uint64](t, name, KindUInt) }

// Doubles returns the backing slice of a float64 column.
func (t *Table) Doubles(name string) ([]float64, error) { return get[float64](t, name, KindDouble) }

// Strings returns the backing slice of a string column.
func (t *Table) Strings(name string) ([]string, error) { return get[string](t, name, KindString) }

// Vec2s returns the backing slice of a Vec2 column.
func (t *Table) Vec2s(name string) ([]model.Vec2, error) { return get[model.Vec2](t, name, KindVec2) }

// Vec3s returns the backing slice of a Vec3 column.
func (t *Table) Vec3s(name string) ([]model.Vec3, error) { return get[model.Vec3](t, name, KindVec3) }

// Int3s returns the backing slice of an Int3 column.
func (t *Table) Int3s(name string) ([]model.Int3, error) { return get[model.Int3](t, name, KindInt3) }

// Int6s returns the backing slice of an Int6 column.
func (t *Table) Int6s(name string) ([]model.Int6, error) { return get[model.Int6](t, name, KindInt6) }

// Shoeboxes returns the backing slice of a Shoebox column.
func (t *Table) Shoeboxes(name string) ([]model.Shoebox, error) {
	return get[model.Shoebox](t, name, KindShoebox)
}
