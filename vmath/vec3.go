package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector in world units
// Y is up, matching the arena's right-handed frame (camera looks down -Z at zero yaw)
type Vec3 struct {
	X, Y, Z float64
}

// Up is the world up axis
var Up = Vec3{0, 1, 0}

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// V3AddScaled returns a + b*s
func V3AddScaled(a, b Vec3, s float64) Vec3 {
	return Vec3{a.X + b.X*s, a.Y + b.Y*s, a.Z + b.Z*s}
}

func V3Neg(v Vec3) Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func V3Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

func V3DistSq(a, b Vec3) float64 {
	return V3MagSq(V3Sub(a, b))
}

func V3Dist(a, b Vec3) float64 {
	return math.Sqrt(V3DistSq(a, b))
}

// V3Normalize returns the unit vector of v
// Zero or non-finite input yields the zero vector instead of NaN
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag < Epsilon || math.IsInf(mag, 0) || math.IsNaN(mag) {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3Horizontal projects v onto the XZ plane and normalizes
// Returns zero when v is (near) vertical
func V3Horizontal(v Vec3) Vec3 {
	return V3Normalize(Vec3{v.X, 0, v.Z})
}

// V3Lerp linearly interpolates between a and b by t
func V3Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3ClampMagnitude limits vector magnitude
func V3ClampMagnitude(v Vec3, maxMag float64) Vec3 {
	magSq := V3MagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	return V3Scale(V3Normalize(v), maxMag)
}

// V3RemoveComponent subtracts the projection of v onto unit axis n
func V3RemoveComponent(v, n Vec3) Vec3 {
	return V3AddScaled(v, n, -V3Dot(v, n))
}

// V3Reflect mirrors v about the plane with unit normal n
func V3Reflect(v, n Vec3) Vec3 {
	return V3AddScaled(v, n, -2*V3Dot(v, n))
}

// V3IsZero reports whether all components are within Epsilon of zero
func V3IsZero(v Vec3) bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon && math.Abs(v.Z) < Epsilon
}
