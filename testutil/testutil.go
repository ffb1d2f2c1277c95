package testutil

import (
	"math/rand"

	"github.com/diffrax/refltab/model"
)

// RNG encapsulates a seeded random number generator so test data is
// reproducible.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 { return r.seed }

// Observations generates n random observations spread over npanels panels.
func (r *RNG) Observations(n, npanels int) []model.Observation {
	obs := make([]model.Observation, n)
	for i := range obs {
		obs[i] = model.Observation{
			Panel: uint64(r.rand.Intn(npanels)),
			Centroid: model.Centroid{
				Position: model.Vec3{
					X: r.rand.Float64() * 2000,
					Y: r.rand.Float64() * 2000,
					Z: r.rand.Float64() * 100,
				},
				Variance: model.Vec3{
					X: r.rand.Float64(),
					Y: r.rand.Float64(),
					Z: r.rand.Float64(),
				},
			},
			Raw: model.Intensity{
				Value:    r.rand.Float64() * 1e4,
				Variance: r.rand.Float64() * 1e2,
			},
			Corrected: model.Intensity{
				Value:    r.rand.Float64() * 1e4,
				Variance: r.rand.Float64() * 1e2,
			},
		}
	}
	return obs
}

// ShoeboxesFor generates one allocated shoebox per observation, on the same
// panel, with a bounding box around the observation centroid.
func (r *RNG) ShoeboxesFor(obs []model.Observation) []model.Shoebox {
	sboxes := make([]model.Shoebox, len(obs))
	for i, o := range obs {
		x := int32(o.Centroid.Position.X)
		y := int32(o.Centroid.Position.Y)
		z := int32(o.Centroid.Position.Z)
		sboxes[i] = model.Shoebox{
			Panel: o.Panel,
			BBox: model.Int6{
				x, x + int32(2+r.rand.Intn(6)),
				y, y + int32(2+r.rand.Intn(6)),
				z, z + int32(1+r.rand.Intn(3)),
			},
		}
		sboxes[i].Allocate()
		for j := range sboxes[i].Data.Data {
			sboxes[i].Data.Data[j] = r.rand.Float64() * 100
		}
	}
	return sboxes
}

// Mask generates a random boolean mask of length n where each entry is true
// with probability p.
func (r *RNG) Mask(n int, p float64) []bool {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = r.rand.Float64() < p
	}
	return mask
}
