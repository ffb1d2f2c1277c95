package refltab

import "errors"

// ErrInvariant marks violations of construction and mutation invariants:
// observation/shoebox sequences of different lengths, panel ids that differ
// between paired records, masks whose length does not match the row count.
// These are caller bugs. They are reported as a distinct error kind, never
// as a partial result, and are not meant to be handled beyond aborting the
// operation.
//
// Match with errors.Is; the wrapping error carries the detail.
var ErrInvariant = errors.New("refltab: invariant violated")
