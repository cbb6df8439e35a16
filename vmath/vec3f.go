package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for sphere-surface transport and
// orientation math
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FLerp blends a toward b by t without renormalization.
// Not suitable for sphere-surface motion; use RotateAbout for arcs.
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FIsFinite reports whether all components are finite
func V3FIsFinite(v Vec3F) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// RotateAbout rotates v around unit axis by angle radians (Rodrigues).
// axis must be normalized; v need not be.
func RotateAbout(v, axis Vec3F, angle float64) Vec3F {
	sin, cos := math.Sincos(angle)
	cross := V3FCross(axis, v)
	dot := V3FDot(axis, v)
	return Vec3F{
		v.X*cos + cross.X*sin + axis.X*dot*(1-cos),
		v.Y*cos + cross.Y*sin + axis.Y*dot*(1-cos),
		v.Z*cos + cross.Z*sin + axis.Z*dot*(1-cos),
	}
}

// OrthogonalTo returns a deterministic unit vector orthogonal to unit
// vector v. Prefers the world +Y axis; falls back to +X when v is
// within epsilon of polar. Used as the antipodal rotation axis and the
// degenerate-heading fallback so results never depend on randomness.
func OrthogonalTo(v Vec3F, epsilon float64) Vec3F {
	ref := Vec3F{0, 1, 0}
	if math.Abs(V3FDot(v, ref)) > 1-epsilon {
		ref = Vec3F{1, 0, 0}
	}
	return V3FNormalize(V3FCross(v, ref))
}

// Clamp01 clamps x to [0, 1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp clamps x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
