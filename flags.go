package refltab

import "strings"

// Flag is a per-row status bitmask stored in the "flags" column. The named
// bits form a closed set; their semantics belong entirely to the algorithms
// that set them, the table itself never interprets them.
type Flag uint64

const (
	// Predicted marks a reflection predicted from the crystal model.
	Predicted Flag = 1 << iota
	// Observed marks a reflection found by spot finding.
	Observed
	// Indexed marks a reflection assigned a miller index.
	Indexed
	// UsedInRefinement marks a reflection used to refine the models.
	UsedInRefinement
	// ReferenceSpot marks a reflection used as a profile reference.
	ReferenceSpot
	// Integrated marks a reflection with a measured intensity.
	Integrated
)

var flagNames = []struct {
	bit  Flag
	name string
}{
	{Predicted, "predicted"},
	{Observed, "observed"},
	{Indexed, "indexed"},
	{UsedInRefinement, "used_in_refinement"},
	{ReferenceSpot, "reference_spot"},
	{Integrated, "integrated"},
}

// String renders the set bits, e.g. "observed|indexed". Unknown bits render
// as empty; a zero flag renders as "none".
func (f Flag) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.bit != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
