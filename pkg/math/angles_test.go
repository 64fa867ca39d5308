package math

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSanitizeAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0, 0},
		{"quarter turn", gomath.Pi / 2, gomath.Pi / 2},
		{"just past pi wraps negative", gomath.Pi + 0.1, -gomath.Pi + 0.1},
		{"just before minus pi wraps positive", -gomath.Pi - 0.1, gomath.Pi - 0.1},
		{"full turn", 2 * gomath.Pi, 0},
		{"negative full turn", -2 * gomath.Pi, 0},
		{"two and a quarter turns", 4.5 * gomath.Pi, gomath.Pi / 2},
	}

	for _, tc := range cases {
		got := SanitizeAngle(tc.in)
		if gomath.Abs(float64(got-tc.want)) > 1e-5 {
			t.Errorf("%s: SanitizeAngle(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestAzimuthAltitude(t *testing.T) {
	// +X axis: azimuth 0, altitude 0
	az, alt := AzimuthAltitude(mgl32.Vec3{1, 0, 0})
	if gomath.Abs(float64(az)) > 1e-5 || gomath.Abs(float64(alt)) > 1e-5 {
		t.Errorf("+X: got az=%v alt=%v, want 0, 0", az, alt)
	}

	// -Z axis: azimuth +pi/2
	az, _ = AzimuthAltitude(mgl32.Vec3{0, 0, -1})
	if gomath.Abs(float64(az)-gomath.Pi/2) > 1e-5 {
		t.Errorf("-Z: got az=%v, want pi/2", az)
	}

	// +Y axis: altitude +pi/2
	_, alt = AzimuthAltitude(mgl32.Vec3{0, 1, 0})
	if gomath.Abs(float64(alt)-gomath.Pi/2) > 1e-5 {
		t.Errorf("+Y: got alt=%v, want pi/2", alt)
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	dirs := []mgl32.Vec3{
		{1, 0, 0},
		{0, 0, 1},
		{0, 0, -1},
		{0.5, 0.3, -0.8},
		{-0.2, -0.9, 0.4},
	}

	for _, dir := range dirs {
		want := dir.Normalize()
		az, alt := AzimuthAltitude(want)
		got := DirectionFromAzimuthAltitude(az, alt)
		if !got.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("round trip of %v: got %v", want, got)
		}
	}
}
