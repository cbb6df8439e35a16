package parameter

// Spherical transport and surface orientation tuning

const (
	// TransportRefBlend is the fraction of the remaining arc covered in
	// one reference frame; with TransportRefDtMs it defines the
	// frame-rate-independent blend b = 1 - (1-refBlend)^(dt/refDt)
	TransportRefBlend = 0.18

	// TransportRefDtMs is the reference frame duration in milliseconds
	TransportRefDtMs = 16.0

	// TransportConvergedDot treats directions with dot >= 1-eps as
	// already converged (identity rotation)
	TransportConvergedDot = 1e-9

	// TransportAntipodalDot treats directions with dot <= -1+eps as
	// antipodal, where the rotation axis is undefined and the
	// deterministic fallback axis is used instead
	TransportAntipodalDot = 1e-9

	// TransportEpsilon guards divisions by near-zero magnitudes
	TransportEpsilon = 1e-12

	// SphereRadiusTidepool is the transport sphere radius in the
	// small-scale sections
	SphereRadiusTidepool = 120.0

	// SphereRadiusOcean is the transport sphere radius once the world
	// re-scales
	SphereRadiusOcean = 480.0

	// HeadingSmoothRate is the per-reference-frame blend applied to the
	// persistent heading before orientation; raw per-frame movement
	// directions are too noisy to feed HeadingBasis directly
	HeadingSmoothRate = 0.12
)

// TransportTuning carries the transport constants into the sphere math
type TransportTuning struct {
	RefBlend     float64
	RefDtMs      float64
	ConvergedDot float64
	AntipodalDot float64
	Epsilon      float64
}

// DefaultTransportTuning returns the shipped transport constants
func DefaultTransportTuning() TransportTuning {
	return TransportTuning{
		RefBlend:     TransportRefBlend,
		RefDtMs:      TransportRefDtMs,
		ConvergedDot: TransportConvergedDot,
		AntipodalDot: TransportAntipodalDot,
		Epsilon:      TransportEpsilon,
	}
}

// SphereRadius returns the transport sphere radius for a section scale
// index (0 = tidepool scale, otherwise ocean scale)
func SphereRadius(oceanScale bool) float64 {
	if oceanScale {
		return SphereRadiusOcean
	}
	return SphereRadiusTidepool
}
