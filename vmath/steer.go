package vmath

import (
	"math"
)

// V3Angle returns the angle in radians between a and b
// Degenerate input returns 0
func V3Angle(a, b Vec3) float64 {
	na, nb := V3Normalize(a), V3Normalize(b)
	if V3IsZero(na) || V3IsZero(nb) {
		return 0
	}
	return math.Acos(Clamp(V3Dot(na, nb), -1, 1))
}

// V3Slerp spherically interpolates between unit vectors a and b by t
// Falls back to normalized lerp when the vectors are nearly parallel
// Antiparallel input rotates through an arbitrary perpendicular axis
func V3Slerp(a, b Vec3, t float64) Vec3 {
	dot := Clamp(V3Dot(a, b), -1, 1)

	if dot > 0.9995 {
		return V3Normalize(V3Lerp(a, b, t))
	}

	if dot < -0.9995 {
		axis := V3Cross(a, Up)
		if V3MagSq(axis) < Epsilon {
			axis = V3Cross(a, Vec3{1, 0, 0})
		}
		axis = V3Normalize(axis)
		// Rotate a by pi*t around axis (Rodrigues, axis ⟂ a)
		theta := math.Pi * t
		return V3Add(V3Scale(a, math.Cos(theta)), V3Scale(V3Cross(axis, a), math.Sin(theta)))
	}

	theta := math.Acos(dot) * t
	// Orthonormal companion of a in the a-b plane
	rel := V3Normalize(V3AddScaled(b, a, -dot))
	return V3Add(V3Scale(a, math.Cos(theta)), V3Scale(rel, math.Sin(theta)))
}

// SteerToward rotates velocity a fraction of the way toward the direction from pos to target
// Magnitude of velocity is preserved; zero velocity or coincident target leaves velocity unchanged
func SteerToward(velocity, pos, target Vec3, fraction float64) Vec3 {
	speed := V3Mag(velocity)
	if speed < Epsilon {
		return velocity
	}
	want := V3Normalize(V3Sub(target, pos))
	if V3IsZero(want) {
		return velocity
	}
	dir := V3Scale(velocity, 1/speed)
	return V3Scale(V3Slerp(dir, want, Clamp(fraction, 0, 1)), speed)
}

// ClosestPointOnSegment returns the point on segment [a, b] nearest to p and its parameter t in [0, 1]
func ClosestPointOnSegment(a, b, p Vec3) (Vec3, float64) {
	ab := V3Sub(b, a)
	lenSq := V3MagSq(ab)
	if lenSq < Epsilon {
		return a, 0
	}
	t := Clamp(V3Dot(V3Sub(p, a), ab)/lenSq, 0, 1)
	return V3AddScaled(a, ab, t), t
}

// SegmentPointDistSq returns squared distance from p to segment [a, b]
func SegmentPointDistSq(a, b, p Vec3) float64 {
	c, _ := ClosestPointOnSegment(a, b, p)
	return V3DistSq(c, p)
}
