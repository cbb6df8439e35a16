package vmath

// Basis is a right-handed orientation frame. Columns are the entity's
// local axes expressed in world space: Right (local X), Up (local Y),
// Forward (local Z).
type Basis struct {
	Right   Vec3F
	Up      Vec3F
	Forward Vec3F
}

// IdentityBasis returns the world-aligned frame
func IdentityBasis() Basis {
	return Basis{
		Right:   Vec3F{1, 0, 0},
		Up:      Vec3F{0, 1, 0},
		Forward: Vec3F{0, 0, 1},
	}
}

// Apply transforms a local-space vector into world space
func (b Basis) Apply(v Vec3F) Vec3F {
	return Vec3F{
		b.Right.X*v.X + b.Up.X*v.Y + b.Forward.X*v.Z,
		b.Right.Y*v.X + b.Up.Y*v.Y + b.Forward.Y*v.Z,
		b.Right.Z*v.X + b.Up.Z*v.Y + b.Forward.Z*v.Z,
	}
}

// IsFinite reports whether all nine elements are finite
func (b Basis) IsFinite() bool {
	return V3FIsFinite(b.Right) && V3FIsFinite(b.Up) && V3FIsFinite(b.Forward)
}

// BasisFromUp builds a frame whose Up column equals the given unit
// normal. Right and Forward are chosen deterministically via
// OrthogonalTo so repeated calls with the same normal agree exactly.
func BasisFromUp(up Vec3F, epsilon float64) Basis {
	forward := OrthogonalTo(up, epsilon)
	right := V3FNormalize(V3FCross(up, forward))
	return Basis{Right: right, Up: up, Forward: forward}
}

// BasisFromUpForward builds a frame from a unit normal and a unit
// tangent-plane forward direction. Caller guarantees the two are
// orthogonal; Right completes the right-handed set.
func BasisFromUpForward(up, forward Vec3F) Basis {
	right := V3FNormalize(V3FCross(up, forward))
	return Basis{Right: right, Up: up, Forward: forward}
}
