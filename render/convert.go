package render

import (
	"github.com/calyxgames/primordia/vmath"
)

// Coordinate convention, in one place.
//
// The field math lives in an abstract 2D plane (vmath.Vec2F). Render
// space is 3D with +Y up; the field plane is the render XZ plane, and
// the render Z axis is the NEGATION of the field Y axis (the camera
// convention inherited from the scene graph). Every crossing between
// the two spaces goes through the functions below so the sign flip can
// never leak into the tested math.

// FieldFromRender projects a render-space position onto the field plane
func FieldFromRender(v vmath.Vec3F) vmath.Vec2F {
	return vmath.Vec2F{X: v.X, Y: -v.Z}
}

// RenderFromField lifts a field-plane point into render space at
// height y
func RenderFromField(p vmath.Vec2F, y float64) vmath.Vec3F {
	return vmath.Vec3F{X: p.X, Y: y, Z: -p.Y}
}

// ApplyFieldDisplacement offsets a render-space position by a
// field-plane displacement, leaving the vertical axis untouched
func ApplyFieldDisplacement(v vmath.Vec3F, disp vmath.Vec2F) vmath.Vec3F {
	return vmath.Vec3F{X: v.X + disp.X, Y: v.Y, Z: v.Z - disp.Y}
}
