package component

import (
	"math"

	"github.com/calyxgames/primordia/vmath"
)

// TransformComponent is the render transform this subsystem owns.
// Position is authoritative-driven (via spherical transport), Scale and
// Rotation are warped per frame, Basis is the surface-orientation frame.
//
// Rotation is the planar spin about the local up axis, in radians; the
// warp lean is applied on top of a cached baseline of this value.
type TransformComponent struct {
	Position vmath.Vec3F
	Scale    vmath.Vec3F
	Rotation float64
	Basis    vmath.Basis
}

// NewTransform returns a transform at position with unit scale and the
// identity frame
func NewTransform(position vmath.Vec3F) TransformComponent {
	return TransformComponent{
		Position: position,
		Scale:    vmath.Vec3F{X: 1, Y: 1, Z: 1},
		Basis:    vmath.IdentityBasis(),
	}
}

// IsFinite reports whether every numeric field is finite; a transform
// failing this check must never reach a render target
func (t TransformComponent) IsFinite() bool {
	return vmath.V3FIsFinite(t.Position) &&
		vmath.V3FIsFinite(t.Scale) &&
		!math.IsNaN(t.Rotation) && !math.IsInf(t.Rotation, 0) &&
		t.Basis.IsFinite()
}
