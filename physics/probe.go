package physics

import (
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// Clearance sweeps a sphere from origin along dir in fixed steps
// Returns the distance of the first blocked sample, or maxDist when the path is clear
// Zero dir reports zero clearance
func Clearance(o Oracle, origin, dir vmath.Vec3, maxDist, radius, step float64) float64 {
	dir = vmath.V3Normalize(dir)
	if vmath.V3IsZero(dir) || step <= 0 {
		return 0
	}
	for d := step; d < maxDist+step; d += step {
		if d > maxDist {
			d = maxDist
		}
		if _, hit := o.IntersectSphere(vmath.V3AddScaled(origin, dir, d), radius); hit {
			return d - step
		}
		if d == maxDist {
			break
		}
	}
	return maxDist
}

// PathClear reports whether a probe sphere can travel minDist along dir without touching the world
func PathClear(o Oracle, origin, dir vmath.Vec3, minDist, radius, step float64) bool {
	return Clearance(o, origin, dir, minDist, radius, step) >= minDist
}
