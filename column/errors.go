package column

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested column does not exist.
//
// Accessors wrap it with the column name; match with errors.Is.
var ErrNotFound = errors.New("column not found")

// KindError indicates a typed accessor was applied to a column holding a
// different element kind.
type KindError struct {
	Column string
	Want   Kind
	Got    Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("column %q holds %s, not %s", e.Column, e.Got, e.Want)
}

// LengthError indicates a column assignment whose length does not match the
// table's row count.
type LengthError struct {
	Column string
	Want   int
	Got    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("column %q has %d rows, table has %d", e.Column, e.Got, e.Want)
}

// RowRangeError indicates a row selection index at or beyond the row count.
type RowRangeError struct {
	Row   uint32
	NRows int
}

func (e *RowRangeError) Error() string {
	return fmt.Sprintf("row %d out of range [0,%d)", e.Row, e.NRows)
}
