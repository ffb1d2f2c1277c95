package model

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec2 is a 2-D point in detector-plane coordinates (millimetres).
type Vec2 = r2.Vec

// Vec3 is a 3-D vector, either in the laboratory frame or in pixel/frame
// space depending on the column it is stored in.
type Vec3 = r3.Vec

// Int3 is a triple of integers, shaped like a miller index.
type Int3 [3]int32

// Int6 is a pixel-space bounding box (x0, x1, y0, y1, z0, z1).
// The upper bounds are exclusive.
type Int6 [6]int32

// XSize returns the extent of the box along the fast (x) axis.
func (b Int6) XSize() int { return int(b[1] - b[0]) }

// YSize returns the extent of the box along the slow (y) axis.
func (b Int6) YSize() int { return int(b[3] - b[2]) }

// ZSize returns the extent of the box along the frame (z) axis.
func (b Int6) ZSize() int { return int(b[5] - b[4]) }

// Valid reports whether every upper bound is at or above its lower bound.
func (b Int6) Valid() bool {
	return b[1] >= b[0] && b[3] >= b[2] && b[5] >= b[4]
}

// Intensity is a measured value together with its variance.
type Intensity struct {
	Value    float64
	Variance float64
}

// Centroid is a spot centroid in pixel/frame space: the position and its
// squared standard error, component-wise.
type Centroid struct {
	Position Vec3
	Variance Vec3
}

// Observation holds the measured properties of a single diffraction spot:
// the detector panel it was seen on, its centroid, and its raw and
// corrected integrated intensities.
type Observation struct {
	Panel     uint64
	Centroid  Centroid
	Raw       Intensity
	Corrected Intensity
}
