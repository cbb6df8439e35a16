package physics

import (
	"math"

	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/vmath"
)

// BlendFactor converts elapsed milliseconds into the fraction of the
// remaining arc to cover this frame:
//
//	b = 1 - (1 - refBlend)^(elapsedMs / refDtMs)
//
// The exponential form is frame-rate independent: two 8ms frames land
// exactly where one 16ms frame would. It stays in [0,1) and is
// monotonically convergent for arbitrarily large elapsed values, so a
// dropped frame just takes a bigger (never overshooting) step.
func BlendFactor(elapsedMs float64, tun parameter.TransportTuning) float64 {
	if elapsedMs <= 0 {
		return 0
	}
	return 1 - math.Pow(1-tun.RefBlend, elapsedMs/tun.RefDtMs)
}

// AdvanceOnSphere moves current toward target along the great circle
// connecting their directions, covering BlendFactor(elapsedMs) of the
// remaining angle, and returns a point at exactly sphereRadius from
// the origin.
//
// Chord interpolation with reprojection is deliberately avoided: it
// compresses the apparent path for angularly distant pairs and biases
// speed along the arc. Rotating the current direction keeps angular
// velocity consistent regardless of separation.
func AdvanceOnSphere(current, target vmath.Vec3F, elapsedMs, sphereRadius float64, tun parameter.TransportTuning) vmath.Vec3F {
	curDir := vmath.V3FNormalize(current)
	tgtDir := vmath.V3FNormalize(target)

	// A degenerate input (zero-length position) has no direction to
	// rotate; snap to the target's projection on the sphere.
	if vmath.V3FMagSq(curDir) < tun.Epsilon {
		if vmath.V3FMagSq(tgtDir) < tun.Epsilon {
			return current
		}
		return vmath.V3FScale(tgtDir, sphereRadius)
	}
	if vmath.V3FMagSq(tgtDir) < tun.Epsilon {
		return vmath.V3FScale(curDir, sphereRadius)
	}

	dot := vmath.Clamp(vmath.V3FDot(curDir, tgtDir), -1, 1)

	// Already converged: identity rotation, return the target on-sphere
	if dot >= 1-tun.ConvergedDot {
		return vmath.V3FScale(tgtDir, sphereRadius)
	}

	var axis vmath.Vec3F
	if dot <= -1+tun.AntipodalDot {
		// Antipodal pair: the minimal-rotation axis is undefined, so any
		// great circle through both points is valid. Pick the
		// deterministic orthogonal so the result is stable and finite.
		axis = vmath.OrthogonalTo(curDir, tun.Epsilon)
	} else {
		axis = vmath.V3FNormalize(vmath.V3FCross(curDir, tgtDir))
	}

	angle := math.Acos(dot) * BlendFactor(elapsedMs, tun)
	rotated := vmath.RotateAbout(curDir, axis, angle)

	// Renormalize the rotated direction before rescaling. Normalizing
	// the blended Cartesian vector directly would bias the result off
	// the great-circle path.
	return vmath.V3FScale(vmath.V3FNormalize(rotated), sphereRadius)
}

// SurfaceNormal returns the local outward normal at a sphere-surface
// position (sphere centered at the world origin)
func SurfaceNormal(position vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FNormalize(position)
}

// SurfaceBasis returns the frame aligning an entity's local up axis
// with the outward surface normal — the flat lie-down stance used by
// disc-shaped organisms lying flush on the curved ground. The tangent
// axes are deterministic for a given position.
func SurfaceBasis(position vmath.Vec3F, tun parameter.TransportTuning) vmath.Basis {
	normal := SurfaceNormal(position)
	if vmath.V3FMagSq(normal) < tun.Epsilon {
		return vmath.IdentityBasis()
	}
	return vmath.BasisFromUp(normal, tun.Epsilon)
}

// HeadingBasis returns the frame for an entity facing heading while
// standing on the sphere surface: forward is the heading projected
// onto the local tangent plane, up is the surface normal.
//
// Degenerate heading (parallel to the normal, or zero) falls back to
// the deterministic tangent axis from OrthogonalTo, never a random or
// non-finite frame.
func HeadingBasis(position, heading vmath.Vec3F, tun parameter.TransportTuning) vmath.Basis {
	normal := SurfaceNormal(position)
	if vmath.V3FMagSq(normal) < tun.Epsilon {
		return vmath.IdentityBasis()
	}

	// Project heading onto the tangent plane: h - (h·n)n
	radial := vmath.V3FDot(heading, normal)
	tangent := vmath.V3FSub(heading, vmath.V3FScale(normal, radial))

	if vmath.V3FMagSq(tangent) < tun.Epsilon {
		tangent = vmath.OrthogonalTo(normal, tun.Epsilon)
	} else {
		tangent = vmath.V3FNormalize(tangent)
	}

	return vmath.BasisFromUpForward(normal, tangent)
}

// SmoothHeading blends the persistent heading toward the instantaneous
// movement direction with the same frame-rate-independent exponential
// form as BlendFactor, keeping orientation stable against per-frame
// noise. Returns the previous heading unchanged when the new direction
// is degenerate.
func SmoothHeading(smoothed, instantaneous vmath.Vec3F, elapsedMs float64, tun parameter.TransportTuning) vmath.Vec3F {
	if vmath.V3FMagSq(instantaneous) < tun.Epsilon {
		return smoothed
	}
	if vmath.V3FMagSq(smoothed) < tun.Epsilon {
		return vmath.V3FNormalize(instantaneous)
	}
	b := 1 - math.Pow(1-parameter.HeadingSmoothRate, elapsedMs/tun.RefDtMs)
	blended := vmath.V3FLerp(smoothed, vmath.V3FNormalize(instantaneous), b)
	if vmath.V3FMagSq(blended) < tun.Epsilon {
		// Opposite headings can cancel; keep the previous one for a frame
		return smoothed
	}
	return vmath.V3FNormalize(blended)
}
