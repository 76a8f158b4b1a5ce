package combat

import "math"

// Vec3 is a world-space position or direction. Y is the vertical axis;
// movement and range checks operate on the XZ plane only.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Planar returns v with the vertical component dropped.
func (v Vec3) Planar() Vec3 { return Vec3{v.X, 0, v.Z} }

// PlanarLen is the length of the XZ projection.
func (v Vec3) PlanarLen() float64 {
	return math.Hypot(v.X, v.Z)
}

// PlanarDist is the XZ-plane distance between two points.
func PlanarDist(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// PlanarNorm returns the unit XZ direction of v, or the zero vector when v
// has no planar extent.
func (v Vec3) PlanarNorm() Vec3 {
	d := v.PlanarLen()
	if d == 0 {
		return Vec3{}
	}
	return Vec3{v.X / d, 0, v.Z / d}
}

// Yaw returns the heading angle (radians) of a planar direction.
// Zero yaw faces +Z; positive rotation is counter-clockwise viewed from above.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}

// YawDir converts a heading angle back into a planar unit vector.
func YawDir(yaw float64) Vec3 {
	return Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// RotateYawToward turns cur toward want by at most maxStep radians, taking
// the shorter way around. Facing is never snapped.
func RotateYawToward(cur, want, maxStep float64) float64 {
	diff := normAngle(want - cur)
	if math.Abs(diff) <= maxStep {
		return want
	}
	if diff > 0 {
		return normAngle(cur + maxStep)
	}
	return normAngle(cur - maxStep)
}

// normAngle wraps an angle into (-π, π].
func normAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
