package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector used by the distortion field math.
// Field space is an abstract Euclidean plane; render axis conventions
// are applied only at the render boundary, never here.
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FDist returns the Euclidean distance between two points
func V2FDist(a, b Vec2F) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// V2FAngle returns the angle of the vector in radians, atan2 convention
func V2FAngle(v Vec2F) float64 {
	return math.Atan2(v.Y, v.X)
}

// V2FIsFinite reports whether both components are finite
func V2FIsFinite(v Vec2F) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
