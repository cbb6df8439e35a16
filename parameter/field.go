package parameter

// Distortion field tuning. These values were settled by visual
// inspection; treat them as data, not invariants. Tests pin the
// defaults so retuning gameplay requires updating expectations
// deliberately.

const (
	// FieldRadiusMultiplier extends a well's visual influence past its
	// gameplay hit radius
	FieldRadiusMultiplier = 1.6

	// FieldFalloffExponent shapes intensity as t^p with t = 1 - d/R
	FieldFalloffExponent = 2.5

	// FieldInnerZoneFrac is the fraction of the radius nearest the core
	// where the quadratic boost ramp applies (t > 1 - frac)
	FieldInnerZoneFrac = 0.3

	// FieldInnerZoneBoost is the multiplier reached at the well core
	FieldInnerZoneBoost = 2.2

	// FieldMaxDisplacement scales per-source displacement, world units
	FieldMaxDisplacement = 34.0
)

// FieldTuning carries the sampler constants into the pure field math
type FieldTuning struct {
	FalloffExponent float64
	InnerZoneFrac   float64
	InnerZoneBoost  float64
	MaxDisplacement float64
}

// DefaultFieldTuning returns the shipped sampler constants
func DefaultFieldTuning() FieldTuning {
	return FieldTuning{
		FalloffExponent: FieldFalloffExponent,
		InnerZoneFrac:   FieldInnerZoneFrac,
		InnerZoneBoost:  FieldInnerZoneBoost,
		MaxDisplacement: FieldMaxDisplacement,
	}
}
