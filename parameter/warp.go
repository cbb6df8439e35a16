package parameter

// Entity warp tuning. The warp calculator reuses the field falloff
// shape with its own constants: steeper ramp, larger boost, and an
// intensity ceiling above 1.0 for dramatic near-core stretching.

const (
	// WarpFalloffExponent shapes warp intensity as t^p
	WarpFalloffExponent = 2.0

	// WarpInnerZoneFrac mirrors FieldInnerZoneFrac for the warp scan
	WarpInnerZoneFrac = 0.35

	// WarpInnerZoneBoost is larger than the field boost so entities
	// visibly deform before the background saturates
	WarpInnerZoneBoost = 3.0

	// WarpIntensityCap allows over-unity intensity near a well core
	WarpIntensityCap = 1.5

	// WarpMinIntensity is the identity-transform cutoff; below it no
	// stretch or lean is applied, avoiding jitter on distant entities
	WarpMinIntensity = 0.01

	// WarpMaxStretch is the pull-axis scale at intensity 1.0
	WarpMaxStretch = 1.85

	// WarpMinSquash is the perpendicular-axis scale at intensity 1.0
	WarpMinSquash = 0.55

	// WarpLeanStrength scales how much of the lean angle is applied on
	// top of the cached baseline rotation
	WarpLeanStrength = 0.8
)

// WarpTuning carries the warp constants into the pure field math
type WarpTuning struct {
	FalloffExponent float64
	InnerZoneFrac   float64
	InnerZoneBoost  float64
	IntensityCap    float64
	MinIntensity    float64
	MaxStretch      float64
	MinSquash       float64
	LeanStrength    float64
}

// DefaultWarpTuning returns the shipped warp constants
func DefaultWarpTuning() WarpTuning {
	return WarpTuning{
		FalloffExponent: WarpFalloffExponent,
		InnerZoneFrac:   WarpInnerZoneFrac,
		InnerZoneBoost:  WarpInnerZoneBoost,
		IntensityCap:    WarpIntensityCap,
		MinIntensity:    WarpMinIntensity,
		MaxStretch:      WarpMaxStretch,
		MinSquash:       WarpMinSquash,
		LeanStrength:    WarpLeanStrength,
	}
}
