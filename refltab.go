package refltab

import (
	"fmt"

	"github.com/diffrax/refltab/column"
	"github.com/diffrax/refltab/detector"
	"github.com/diffrax/refltab/model"
)

// Standard column names. Columns can have any name and type; these are the
// names shared between algorithms (see Table.HelpKeys).
const (
	ColFlags       = "flags"
	ColID          = "id"
	ColPanel       = "panel"
	ColMillerIndex = "miller_index"
	ColEntering    = "entering"
	ColS1          = "s1"

	ColXYZObsPxValue    = "xyzobs.px.value"
	ColXYZObsPxVariance = "xyzobs.px.variance"

	ColIntensityRawValue    = "intensity.raw.value"
	ColIntensityRawVariance = "intensity.raw.variance"
	ColIntensityCorValue    = "intensity.cor.value"
	ColIntensityCorVariance = "intensity.cor.variance"

	ColBBox    = "bbox"
	ColShoebox = "shoebox"
)

// Table is a reflection table: a column store with crystallography-specific
// construction, flag and geometry operations layered on top. Rows are
// identified by index only.
//
// Mutations are caller-synchronized; the table provides no locking.
type Table struct {
	*column.Table

	logger *Logger
}

// New creates an empty reflection table with the given row count.
func New(nrows int, opts ...Option) *Table {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Table{Table: column.NewTable(nrows), logger: o.logger}
}

// FromObservations builds a reflection table with one row per paired
// observation and shoebox.
//
// The two sequences must have equal length and every pair must agree on the
// panel id; any violation returns ErrInvariant with no partial result. The
// populated columns are panel, xyzobs.px.value, xyzobs.px.variance,
// intensity.raw.value, intensity.raw.variance, intensity.cor.value,
// intensity.cor.variance, bbox and shoebox. The shoebox column carries the
// same bounding box as the bbox column.
func FromObservations(obs []model.Observation, sboxes []model.Shoebox, opts ...Option) (*Table, error) {
	t := New(len(obs), opts...)

	if len(obs) != len(sboxes) {
		err := fmt.Errorf("%w: %d observations paired with %d shoeboxes",
			ErrInvariant, len(obs), len(sboxes))
		t.logger.LogBuild(0, err)
		return nil, err
	}

	n := len(obs)
	panel := make([]uint64, n)
	xyzval := make([]model.Vec3, n)
	xyzvar := make([]model.Vec3, n)
	iraw := make([]float64, n)
	irawv := make([]float64, n)
	icor := make([]float64, n)
	icorv := make([]float64, n)
	bbox := make([]model.Int6, n)
	sbox := make([]model.Shoebox, n)

	for i := range obs {
		if obs[i].Panel != sboxes[i].Panel {
			err := fmt.Errorf("%w: row %d: observation panel %d, shoebox panel %d",
				ErrInvariant, i, obs[i].Panel, sboxes[i].Panel)
			t.logger.LogBuild(0, err)
			return nil, err
		}
		panel[i] = obs[i].Panel

		xyzval[i] = obs[i].Centroid.Position
		xyzvar[i] = obs[i].Centroid.Variance
		iraw[i] = obs[i].Raw.Value
		irawv[i] = obs[i].Raw.Variance
		icor[i] = obs[i].Corrected.Value
		icorv[i] = obs[i].Corrected.Variance

		bbox[i] = sboxes[i].BBox
		sbox[i] = sboxes[i]
		sbox[i].BBox = sboxes[i].BBox
	}

	if err := t.SetUInts(ColPanel, panel); err != nil {
		return nil, err
	}
	if err := t.SetVec3s(ColXYZObsPxValue, xyzval); err != nil {
		return nil, err
	}
	if err := t.SetVec3s(ColXYZObsPxVariance, xyzvar); err != nil {
		return nil, err
	}
	if err := t.SetDoubles(ColIntensityRawValue, iraw); err != nil {
		return nil, err
	}
	if err := t.SetDoubles(ColIntensityRawVariance, irawv); err != nil {
		return nil, err
	}
	if err := t.SetDoubles(ColIntensityCorValue, icor); err != nil {
		return nil, err
	}
	if err := t.SetDoubles(ColIntensityCorVariance, icorv); err != nil {
		return nil, err
	}
	if err := t.SetInt6s(ColBBox, bbox); err != nil {
		return nil, err
	}
	if err := t.SetShoeboxes(ColShoebox, sbox); err != nil {
		return nil, err
	}

	t.logger.LogBuild(n, nil)
	return t, nil
}

// GetFlags reports, per row, whether every bit of value is set in the flags
// column. Pure; no column is written.
func (t *Table) GetFlags(value Flag) ([]bool, error) {
	flags, err := t.UInts(ColFlags)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(flags))
	for i, f := range flags {
		out[i] = f&uint64(value) == uint64(value)
	}
	return out, nil
}

// SetFlags ORs value into the flags column for every row where mask is
// true. The mask length must equal the row count. The flags column is
// created zeroed if absent.
func (t *Table) SetFlags(mask []bool, value Flag) error {
	if len(mask) != t.NRows() {
		return fmt.Errorf("%w: mask has %d entries, table has %d rows",
			ErrInvariant, len(mask), t.NRows())
	}
	flags, err := t.flagsColumn()
	if err != nil {
		return err
	}
	rows := 0
	for i, m := range mask {
		if m {
			flags[i] |= uint64(value)
			rows++
		}
	}
	t.logger.LogFlagUpdate("set", value, rows)
	return nil
}

// UnsetFlags clears the bits of value in the flags column for every row
// where mask is true; all other bits and all unmasked rows are untouched.
func (t *Table) UnsetFlags(mask []bool, value Flag) error {
	if len(mask) != t.NRows() {
		return fmt.Errorf("%w: mask has %d entries, table has %d rows",
			ErrInvariant, len(mask), t.NRows())
	}
	flags, err := t.flagsColumn()
	if err != nil {
		return err
	}
	rows := 0
	for i, m := range mask {
		if m {
			flags[i] &^= uint64(value)
			rows++
		}
	}
	t.logger.LogFlagUpdate("unset", value, rows)
	return nil
}

// Where returns the selection of rows with every bit of value set.
func (t *Table) Where(value Flag) (*Selection, error) {
	flags, err := t.UInts(ColFlags)
	if err != nil {
		return nil, err
	}
	sel := NewSelection()
	for i, f := range flags {
		if f&uint64(value) == uint64(value) {
			sel.Add(uint32(i))
		}
	}
	return sel, nil
}

// Select returns a new reflection table holding only the selected rows.
func (t *Table) Select(sel *Selection) (*Table, error) {
	sub, err := t.Table.Select(sel.ToArray())
	if err != nil {
		return nil, err
	}
	return &Table{Table: sub, logger: t.logger}, nil
}

// ComputeRayIntersections projects each row's diffracted beam vector ("s1"
// column) onto its assigned panel ("panel" column) and returns the in-plane
// intersection points in millimetres. Pure; no column is written. A panel
// index outside the detector or a ray that misses its panel plane aborts
// with that error.
func (t *Table) ComputeRayIntersections(d detector.Detector) ([]model.Vec2, error) {
	s1, err := t.Vec3s(ColS1)
	if err != nil {
		return nil, err
	}
	panel, err := t.UInts(ColPanel)
	if err != nil {
		return nil, err
	}
	out := make([]model.Vec2, t.NRows())
	for i := range out {
		p, err := d.RayIntersection(panel[i], s1[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// flagsColumn returns the live flags slice, creating the column if absent.
func (t *Table) flagsColumn() ([]uint64, error) {
	if !t.Has(ColFlags) {
		if err := t.SetUInts(ColFlags, make([]uint64, t.NRows())); err != nil {
			return nil, err
		}
	}
	return t.UInts(ColFlags)
}
