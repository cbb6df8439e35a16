package physics

import (
	"math"
	"testing"

	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/vmath"
)

const floatTol = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func singleSource(x, y, radius, strength float64) []FieldSource {
	return []FieldSource{{
		Pos:             vmath.Vec2F{X: x, Y: y},
		EffectiveRadius: radius,
		Strength:        strength,
	}}
}

func TestSampleOutsideRadiusIsZero(t *testing.T) {
	sources := singleSource(0, 0, 100, 1)
	tun := parameter.DefaultFieldTuning()

	for _, dist := range []float64{100, 100.0001, 150, 1e6} {
		sample := SampleField(sources, vmath.Vec2F{X: dist}, tun)
		if sample.Displacement.X != 0 || sample.Displacement.Y != 0 {
			t.Errorf("Expected zero displacement at distance %v, got %+v", dist, sample.Displacement)
		}
		if sample.Intensity != 0 {
			t.Errorf("Expected zero intensity at distance %v, got %v", dist, sample.Intensity)
		}
	}
}

func TestSampleFalloffValueAtHalfRadius(t *testing.T) {
	sources := singleSource(0, 0, 100, 1)
	tun := parameter.DefaultFieldTuning()

	// t = 0.5 is below the inner-zone boundary, so intensity is the
	// plain falloff 0.5^2.5
	sample := SampleField(sources, vmath.Vec2F{X: 50}, tun)
	want := math.Pow(0.5, tun.FalloffExponent)
	if !almostEqual(sample.Intensity, want, floatTol) {
		t.Errorf("Expected intensity %v at half radius, got %v", want, sample.Intensity)
	}

	// Displacement points exactly toward the source (-X direction)
	dir := vmath.V2FNormalize(sample.Displacement)
	if !almostEqual(dir.X, -1, floatTol) || !almostEqual(dir.Y, 0, floatTol) {
		t.Errorf("Expected displacement direction (-1,0), got %+v", dir)
	}
	if !almostEqual(sample.DominantDir.X, -1, floatTol) {
		t.Errorf("Expected dominant direction (-1,0), got %+v", sample.DominantDir)
	}
}

func TestSampleIntensityMonotonicWithDistance(t *testing.T) {
	sources := singleSource(0, 0, 100, 0.4)
	tun := parameter.DefaultFieldTuning()

	prev := -1.0
	for dist := 100.0; dist >= 0; dist -= 0.5 {
		sample := SampleField(sources, vmath.Vec2F{X: dist}, tun)
		if sample.Intensity < prev-floatTol {
			t.Fatalf("Intensity not monotonic: %v at distance %v after %v", sample.Intensity, dist, prev)
		}
		prev = sample.Intensity
	}
}

func TestSampleInnerZoneBoundaryContinuity(t *testing.T) {
	sources := singleSource(0, 0, 100, 0.3)
	tun := parameter.DefaultFieldTuning()

	// The zone boundary sits at t = 1 - InnerZoneFrac, i.e. distance
	// R * InnerZoneFrac from the center
	boundary := 100 * tun.InnerZoneFrac
	below := SampleField(sources, vmath.Vec2F{X: boundary + 1e-7}, tun)
	above := SampleField(sources, vmath.Vec2F{X: boundary - 1e-7}, tun)
	if !almostEqual(below.Intensity, above.Intensity, 1e-5) {
		t.Errorf("Expected continuous intensity across inner-zone boundary, got %v vs %v",
			below.Intensity, above.Intensity)
	}
}

func TestSampleInnerZoneBoostAtCore(t *testing.T) {
	tun := parameter.DefaultFieldTuning()

	// Low strength so the boosted core stays below the clamp and the
	// boost multiplier is observable in the exposed intensity
	sources := singleSource(0, 0, 100, 0.2)
	sample := SampleField(sources, vmath.Vec2F{}, tun)
	want := 0.2 * tun.InnerZoneBoost
	if !almostEqual(sample.Intensity, want, floatTol) {
		t.Errorf("Expected fully boosted intensity %v at core, got %v", want, sample.Intensity)
	}

	// Full strength saturates the exposed scalar at the clamp
	sources = singleSource(0, 0, 100, 1)
	sample = SampleField(sources, vmath.Vec2F{}, tun)
	if sample.Intensity != 1 {
		t.Errorf("Expected clamped intensity 1 at core, got %v", sample.Intensity)
	}
}

func TestSampleSymmetricSourcesCancelDisplacementNotIntensity(t *testing.T) {
	tun := parameter.DefaultFieldTuning()
	sources := []FieldSource{
		{Pos: vmath.Vec2F{X: -50}, EffectiveRadius: 100, Strength: 1},
		{Pos: vmath.Vec2F{X: 50}, EffectiveRadius: 100, Strength: 1},
	}

	sample := SampleField(sources, vmath.Vec2F{}, tun)
	if !almostEqual(sample.Displacement.X, 0, floatTol) || !almostEqual(sample.Displacement.Y, 0, floatTol) {
		t.Errorf("Expected vector cancellation at midpoint, got %+v", sample.Displacement)
	}

	// Scalar intensities do not cancel: the sum is twice the single
	// source value
	single := SampleField(sources[:1], vmath.Vec2F{}, tun)
	want := vmath.Clamp01(2 * single.Intensity)
	if !almostEqual(sample.Intensity, want, floatTol) {
		t.Errorf("Expected scalar-sum intensity %v, got %v", want, sample.Intensity)
	}
}

func TestSampleOverlappingSourcesCompound(t *testing.T) {
	tun := parameter.DefaultFieldTuning()
	sources := []FieldSource{
		{Pos: vmath.Vec2F{X: 60}, EffectiveRadius: 100, Strength: 0.3},
		{Pos: vmath.Vec2F{X: 80}, EffectiveRadius: 100, Strength: 0.3},
	}

	both := SampleField(sources, vmath.Vec2F{}, tun)
	first := SampleField(sources[:1], vmath.Vec2F{}, tun)
	if both.Displacement.X <= first.Displacement.X {
		t.Errorf("Expected compounding displacement, got %v vs single %v",
			both.Displacement.X, first.Displacement.X)
	}
}

func TestSampleDominantDirectionTracksStrongestSource(t *testing.T) {
	tun := parameter.DefaultFieldTuning()
	sources := []FieldSource{
		{Pos: vmath.Vec2F{X: -40}, EffectiveRadius: 100, Strength: 0.2},
		{Pos: vmath.Vec2F{Y: 40}, EffectiveRadius: 100, Strength: 2.0},
	}

	sample := SampleField(sources, vmath.Vec2F{}, tun)
	if !(sample.DominantDir.Y > 0.999) {
		t.Errorf("Expected dominant direction toward the strong source (+Y), got %+v", sample.DominantDir)
	}
}

func TestComputeWarpIdentityBelowThreshold(t *testing.T) {
	tun := parameter.DefaultWarpTuning()

	// No sources at all
	warp := ComputeWarp(nil, vmath.Vec2F{}, tun)
	if warp != IdentityWarp() {
		t.Errorf("Expected identity warp with no sources, got %+v", warp)
	}

	// Source barely in range: intensity under the cutoff
	sources := singleSource(0, 0, 100, 1)
	warp = ComputeWarp(sources, vmath.Vec2F{X: 99.99}, tun)
	if warp != IdentityWarp() {
		t.Errorf("Expected identity warp below minimum intensity, got %+v", warp)
	}
	if warp.Stretch != 1 || warp.Squash != 1 || warp.Lean != 0 || warp.Intensity != 0 {
		t.Errorf("Expected identity fields {1,1,0,0}, got %+v", warp)
	}
}

func TestComputeWarpMapping(t *testing.T) {
	tun := parameter.DefaultWarpTuning()
	sources := singleSource(0, 0, 100, 1)

	p := vmath.Vec2F{X: 50}
	warp := ComputeWarp(sources, p, tun)
	intensity := math.Pow(0.5, tun.FalloffExponent)

	wantStretch := 1 + (tun.MaxStretch-1)*intensity
	wantSquash := 1 - (1-tun.MinSquash)*intensity
	if !almostEqual(warp.Stretch, wantStretch, floatTol) {
		t.Errorf("Expected stretch %v, got %v", wantStretch, warp.Stretch)
	}
	if !almostEqual(warp.Squash, wantSquash, floatTol) {
		t.Errorf("Expected squash %v, got %v", wantSquash, warp.Squash)
	}

	// Pull direction is -X, so the lean angle is pi
	if !almostEqual(math.Abs(warp.Lean), math.Pi, floatTol) {
		t.Errorf("Expected lean angle ±pi, got %v", warp.Lean)
	}
}

func TestComputeWarpIntensityCappedNearCore(t *testing.T) {
	tun := parameter.DefaultWarpTuning()
	sources := singleSource(0, 0, 100, 1)

	// At the core the boosted intensity exceeds the cap and must be
	// clamped to it, allowing over-unity stretching but not unbounded
	warp := ComputeWarp(sources, vmath.Vec2F{}, tun)
	if !almostEqual(warp.Intensity, tun.IntensityCap, floatTol) {
		t.Errorf("Expected capped intensity %v at core, got %v", tun.IntensityCap, warp.Intensity)
	}
	if warp.Stretch <= tun.MaxStretch {
		// Intensity above 1.0 pushes stretch past MaxStretch
		t.Errorf("Expected over-unity stretch above %v, got %v", tun.MaxStretch, warp.Stretch)
	}
}

func TestComputeWarpUsesDominantSourceOnly(t *testing.T) {
	tun := parameter.DefaultWarpTuning()

	// Symmetric sources would cancel in a vector sum; the warp must
	// still lean toward one coherent source
	sources := []FieldSource{
		{Pos: vmath.Vec2F{X: -50}, EffectiveRadius: 100, Strength: 1},
		{Pos: vmath.Vec2F{X: 50}, EffectiveRadius: 100, Strength: 0.999},
	}
	warp := ComputeWarp(sources, vmath.Vec2F{}, tun)
	if warp.Intensity < tun.MinIntensity {
		t.Fatalf("Expected active warp between sources, got %+v", warp)
	}
	if !almostEqual(math.Abs(warp.Lean), math.Pi, floatTol) {
		t.Errorf("Expected lean toward the dominant source (-X, angle ±pi), got %v", warp.Lean)
	}
}
