// Package refltab provides in-memory reflection tables for crystallographic
// data processing.
//
// A reflection table is a column store (see the column subpackage) with
// crystallography-specific operations layered on top: construction from
// paired observation/shoebox records, per-row status-flag manipulation, and
// projection of diffracted beam vectors onto detector panels.
//
// # Quick Start
//
//	t, err := refltab.FromObservations(obs, sboxes)
//	if err != nil { ... }
//
//	// Mark the strong spots.
//	err = t.SetFlags(strong, refltab.Observed|refltab.ReferenceSpot)
//
//	// Pull out the indexed subset.
//	sel, _ := t.Where(refltab.Indexed)
//	indexed, _ := t.Select(sel)
//
//	// Project beam vectors onto the detector.
//	xy, err := t.ComputeRayIntersections(det)
//
// # Error Model
//
// Two failure tiers coexist. Violated invariants (mismatched lengths,
// panel-id disagreement between paired records) are caller bugs and return
// an error matching ErrInvariant with no partial result. Typed column
// access failures return column.ErrNotFound or a column.KindError and are
// ordinary recoverable conditions.
//
// # Concurrency
//
// Everything is synchronous. Tables provide no locking; callers
// synchronize mutation. Read-only operations are safe to run concurrently
// with each other.
package refltab
