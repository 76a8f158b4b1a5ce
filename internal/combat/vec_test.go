package combat

import (
	"math"
	"testing"
)

func TestYawRoundTrip(t *testing.T) {
	for _, yaw := range []float64{0, math.Pi / 4, math.Pi / 2, -math.Pi / 2, 3} {
		got := YawDir(yaw).Yaw()
		almostEqual(t, got, yaw, 1e-9, "yaw round trip")
	}
}

func TestPlanarNormIgnoresVertical(t *testing.T) {
	v := Vec3{X: 3, Y: 99, Z: 4}.PlanarNorm()
	almostEqual(t, v.X, 0.6, 1e-9, "normalized X")
	almostEqual(t, v.Z, 0.8, 1e-9, "normalized Z")
	if v.Y != 0 {
		t.Fatal("planar normalization must drop the vertical component")
	}
}

func TestPlanarNormZeroVector(t *testing.T) {
	if got := (Vec3{Y: 5}).PlanarNorm(); got != (Vec3{}) {
		t.Fatalf("norm of a vertical-only vector = %v, want zero", got)
	}
}

func TestRotateYawTowardShorterWay(t *testing.T) {
	// From +170° to -170°: the short way crosses the ±π seam.
	cur := 170 * math.Pi / 180
	want := -170 * math.Pi / 180
	got := RotateYawToward(cur, want, 10*math.Pi/180)
	almostEqual(t, math.Abs(got), math.Pi, 1e-9, "one step across the seam")
}

func TestRotateYawTowardSnapsWithinStep(t *testing.T) {
	got := RotateYawToward(0, 0.1, 0.5)
	almostEqual(t, got, 0.1, 1e-12, "within max step, land exactly on target")
}
