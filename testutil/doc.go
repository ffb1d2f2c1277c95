// Package testutil provides testing utilities for refltab.
//
// This package is intended for use in tests and benchmarks only. It
// generates reproducible observation/shoebox pairs and boolean masks from a
// seeded RNG.
package testutil
