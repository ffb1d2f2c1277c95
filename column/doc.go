// Package column implements an in-memory, column-oriented table.
//
// A Table maps column names to homogeneously typed sequences; all columns
// share the same row count. The element type of each column is carried as a
// runtime Kind tag, and typed accessors (Doubles, Vec3s, ...) fail with a
// KindError when the requested type does not match the stored column.
//
// The store is deliberately minimal: no persistence, no locking, no schema.
// Column presence is only checked by the operations that need a column, at
// call time.
package column
