package vmath

import (
	"math"
	"testing"
)

const tol = 1e-12

func vecClose(a, b Vec3F) bool {
	return V3FMag(V3FSub(a, b)) <= 1e-9
}

func TestRotateAboutQuarterTurn(t *testing.T) {
	// +X rotated a quarter turn about +Y lands on -Z (right-handed)
	got := RotateAbout(Vec3F{X: 1}, Vec3F{Y: 1}, math.Pi/2)
	if !vecClose(got, Vec3F{Z: -1}) {
		t.Errorf("Expected (0,0,-1), got %+v", got)
	}

	// Full turn is identity
	got = RotateAbout(Vec3F{X: 3, Y: 1, Z: -2}, Vec3F{Y: 1}, 2*math.Pi)
	if !vecClose(got, Vec3F{X: 3, Y: 1, Z: -2}) {
		t.Errorf("Expected identity after a full turn, got %+v", got)
	}
}

func TestRotateAboutPreservesLength(t *testing.T) {
	v := Vec3F{X: 2, Y: -1, Z: 0.5}
	axis := V3FNormalize(Vec3F{X: 1, Y: 1, Z: 1})
	for _, angle := range []float64{0.1, 1, math.Pi, 5} {
		got := RotateAbout(v, axis, angle)
		if math.Abs(V3FMag(got)-V3FMag(v)) > 1e-9 {
			t.Errorf("Angle %v: expected length %v, got %v", angle, V3FMag(v), V3FMag(got))
		}
	}
}

func TestOrthogonalToIsDeterministicAndOrthogonal(t *testing.T) {
	inputs := []Vec3F{
		{X: 1},
		{Z: -1},
		V3FNormalize(Vec3F{X: 0.3, Y: 0.4, Z: -0.5}),
		{Y: 1}, // polar, takes the fallback reference
		{Y: -1},
	}
	for _, v := range inputs {
		got := OrthogonalTo(v, 1e-12)
		if math.Abs(V3FMag(got)-1) > 1e-9 {
			t.Errorf("%+v: expected unit result, got %+v", v, got)
		}
		if dot := V3FDot(v, got); math.Abs(dot) > 1e-9 {
			t.Errorf("%+v: expected orthogonal result, dot %v", v, dot)
		}
		if again := OrthogonalTo(v, 1e-12); again != got {
			t.Errorf("%+v: expected deterministic result, got %+v then %+v", v, got, again)
		}
	}
}

func TestNormalizeZeroIsZero(t *testing.T) {
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("Expected zero vector unchanged, got %+v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !V3FIsFinite(Vec3F{X: 1, Y: -2, Z: 3}) {
		t.Error("Expected finite vector to pass")
	}
	for _, v := range []Vec3F{
		{X: math.NaN()},
		{Y: math.Inf(1)},
		{Z: math.Inf(-1)},
	} {
		if V3FIsFinite(v) {
			t.Errorf("Expected %+v to fail the finite check", v)
		}
	}
}

func TestBasisFromUpRightHanded(t *testing.T) {
	up := V3FNormalize(Vec3F{X: 0.6, Y: 0.8})
	b := BasisFromUp(up, tol)
	if !vecClose(b.Up, up) {
		t.Errorf("Expected up %+v, got %+v", up, b.Up)
	}
	// Up x Forward closes the right-handed set
	if !vecClose(V3FCross(b.Up, b.Forward), b.Right) {
		t.Errorf("Expected right-handed frame, got %+v", b)
	}
	if math.Abs(V3FDot(b.Right, b.Forward)) > 1e-9 || math.Abs(V3FDot(b.Up, b.Forward)) > 1e-9 {
		t.Errorf("Expected orthogonal axes, got %+v", b)
	}
}
