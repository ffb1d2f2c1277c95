package detector

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/diffrax/refltab/model"
)

// ErrRayBehind is returned when a beam vector points away from the panel
// plane and cannot intersect it.
var ErrRayBehind = errors.New("ray does not intersect detector plane")

// PanelOutOfRangeError indicates a panel index at or beyond the number of
// panels in the detector.
type PanelOutOfRangeError struct {
	Panel   uint64
	NPanels int
}

func (e *PanelOutOfRangeError) Error() string {
	return fmt.Sprintf("panel %d out of range [0,%d)", e.Panel, e.NPanels)
}

// Panel is a flat detector panel. Fast and Slow are the in-plane axis
// directions and Origin is the lab-frame position of pixel (0,0), all in
// millimetres.
type Panel struct {
	Name   string
	Fast   model.Vec3
	Slow   model.Vec3
	Origin model.Vec3

	// dInv maps lab-frame directions onto (fast, slow, normal) components.
	dInv *mat.Dense
}

// NewPanel builds a panel and precomputes the projection matrix. The three
// frame vectors must be linearly independent.
func NewPanel(name string, fast, slow, origin model.Vec3) (*Panel, error) {
	d := mat.NewDense(3, 3, []float64{
		fast.X, slow.X, origin.X,
		fast.Y, slow.Y, origin.Y,
		fast.Z, slow.Z, origin.Z,
	})
	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		return nil, fmt.Errorf("degenerate panel frame for %q: %w", name, err)
	}
	return &Panel{
		Name:   name,
		Fast:   fast,
		Slow:   slow,
		Origin: origin,
		dInv:   &inv,
	}, nil
}

// RayIntersection projects the diffracted beam vector s1 (lab frame, from
// the crystal) onto the panel plane and returns the in-plane coordinates in
// millimetres. A ray on or behind the plane of the source returns
// ErrRayBehind.
func (p *Panel) RayIntersection(s1 model.Vec3) (model.Vec2, error) {
	var v mat.VecDense
	v.MulVec(p.dInv, mat.NewVecDense(3, []float64{s1.X, s1.Y, s1.Z}))
	w := v.AtVec(2)
	if w <= 0 {
		return model.Vec2{}, fmt.Errorf("panel %q: %w", p.Name, ErrRayBehind)
	}
	return model.Vec2{X: v.AtVec(0) / w, Y: v.AtVec(1) / w}, nil
}

// Detector is an ordered collection of panels, addressed by panel index.
type Detector []*Panel

// RayIntersection bounds-checks the panel index and delegates to the panel.
func (d Detector) RayIntersection(panel uint64, s1 model.Vec3) (model.Vec2, error) {
	if panel >= uint64(len(d)) {
		return model.Vec2{}, &PanelOutOfRangeError{Panel: panel, NPanels: len(d)}
	}
	return d[panel].RayIntersection(s1)
}
