package physics

import (
	"math"

	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/vmath"
)

// FieldSource is one gravity well in field space. EffectiveRadius is
// the gameplay radius already multiplied by FieldRadiusMultiplier, so
// visual influence extends past the hit radius.
type FieldSource struct {
	Pos             vmath.Vec2F
	EffectiveRadius float64
	Strength        float64
}

// FieldSample is the accumulated field at one point.
// Displacement is the raw vector sum over all in-range sources and is
// never reclamped; Intensity is the scalar sum clamped to [0,1].
// DominantDir points toward the single highest-intensity source.
type FieldSample struct {
	Displacement vmath.Vec2F
	Intensity    float64
	DominantDir  vmath.Vec2F
}

// WarpState is the dominant-source stretch/lean transform for one
// entity. Identity is {Stretch: 1, Squash: 1, Lean: 0, Intensity: 0}.
type WarpState struct {
	Stretch   float64
	Squash    float64
	Lean      float64
	Intensity float64
}

// IdentityWarp returns the no-op warp state
func IdentityWarp() WarpState {
	return WarpState{Stretch: 1, Squash: 1}
}

// sourceIntensity evaluates the falloff curve for one source at
// distance dist. Returns 0 outside the effective radius.
//
// Inside the radius: t = 1 - dist/R in (0,1], base = t^p * strength.
// Once t crosses the inner-zone boundary (t > 1 - innerFrac) the base
// is multiplied by 1 + (boost-1)*innerT^2 with innerT rescaled to
// [0,1] across the zone. The ramp is quadratic and equals 1x exactly
// at the boundary, so intensity is continuous there.
func sourceIntensity(dist, radius, strength, exponent, innerFrac, boost float64) float64 {
	if radius <= 0 || dist >= radius {
		return 0
	}
	t := 1 - dist/radius
	intensity := math.Pow(t, exponent) * strength

	zoneStart := 1 - innerFrac
	if innerFrac > 0 && t > zoneStart {
		innerT := (t - zoneStart) / innerFrac
		intensity *= 1 + (boost-1)*innerT*innerT
	}
	return intensity
}

// SampleField accumulates the distortion field at point p.
// Overlapping wells compound: displacement contributions are summed
// vectorially, so symmetric sources cancel each other's displacement
// while their scalar intensities still add.
func SampleField(sources []FieldSource, p vmath.Vec2F, tun parameter.FieldTuning) FieldSample {
	var sample FieldSample
	bestIntensity := 0.0
	intensitySum := 0.0

	for i := range sources {
		src := &sources[i]
		delta := vmath.V2FSub(src.Pos, p)
		dist := vmath.V2FMag(delta)

		intensity := sourceIntensity(dist, src.EffectiveRadius, src.Strength,
			tun.FalloffExponent, tun.InnerZoneFrac, tun.InnerZoneBoost)
		if intensity <= 0 {
			continue
		}

		dir := directionToward(delta, dist)
		sample.Displacement = vmath.V2FAdd(sample.Displacement,
			vmath.V2FScale(dir, intensity*tun.MaxDisplacement))
		intensitySum += intensity

		if intensity > bestIntensity {
			bestIntensity = intensity
			sample.DominantDir = dir
		}
	}

	sample.Intensity = vmath.Clamp01(intensitySum)
	return sample
}

// ComputeWarp scans for the single dominant source at point p and maps
// its intensity to a stretch/squash/lean transform. Only the dominant
// source's direction is used, never a vector sum, so an entity always
// leans toward one coherent well.
func ComputeWarp(sources []FieldSource, p vmath.Vec2F, tun parameter.WarpTuning) WarpState {
	bestIntensity := 0.0
	var bestDir vmath.Vec2F

	for i := range sources {
		src := &sources[i]
		delta := vmath.V2FSub(src.Pos, p)
		dist := vmath.V2FMag(delta)

		intensity := sourceIntensity(dist, src.EffectiveRadius, src.Strength,
			tun.FalloffExponent, tun.InnerZoneFrac, tun.InnerZoneBoost)
		if intensity > bestIntensity {
			bestIntensity = intensity
			bestDir = directionToward(delta, dist)
		}
	}

	if bestIntensity > tun.IntensityCap {
		bestIntensity = tun.IntensityCap
	}
	if bestIntensity < tun.MinIntensity {
		return IdentityWarp()
	}

	return WarpState{
		Stretch:   1 + (tun.MaxStretch-1)*bestIntensity,
		Squash:    1 - (1-tun.MinSquash)*bestIntensity,
		Lean:      vmath.V2FAngle(bestDir),
		Intensity: bestIntensity,
	}
}

// directionToward returns the unit vector along delta, with the
// near-zero distance guard: a point sitting on a well center has no
// meaningful pull direction and contributes none.
func directionToward(delta vmath.Vec2F, dist float64) vmath.Vec2F {
	if dist < distanceEpsilon {
		return vmath.Vec2F{}
	}
	return vmath.V2FScale(delta, 1/dist)
}

// distanceEpsilon guards division by near-zero source distance
const distanceEpsilon = 1e-9
