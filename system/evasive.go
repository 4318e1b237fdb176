package system

import (
	"math"

	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// evasiveCandidates is the number of horizontal directions probed around the facing
const evasiveCandidates = 8

// EvasiveCandidates returns horizontal unit directions spaced evenly around facing
// Order: forward, then alternating lateral and back directions
func EvasiveCandidates(facing vmath.Vec3) []vmath.Vec3 {
	f := vmath.V3Horizontal(facing)
	if vmath.V3IsZero(f) {
		f = vmath.Vec3{Z: -1}
	}
	out := make([]vmath.Vec3, 0, evasiveCandidates)
	for i := 0; i < evasiveCandidates; i++ {
		a := 2 * math.Pi * float64(i) / evasiveCandidates
		s, c := math.Sincos(a)
		out = append(out, vmath.Vec3{X: f.X*c - f.Z*s, Z: f.X*s + f.Z*c})
	}
	return out
}

// ChooseEvasive picks uniformly among candidates with clearance from pos; Up when all are blocked
func ChooseEvasive(o physics.Oracle, rnd *vmath.FastRand, pos, facing vmath.Vec3, clearance float64) vmath.Vec3 {
	origin := vmath.V3AddScaled(pos, vmath.Up, parameter.ProbeLift)
	var clear []vmath.Vec3
	for _, dir := range EvasiveCandidates(facing) {
		if physics.PathClear(o, origin, dir, clearance, parameter.ProbeRadius, parameter.ProbeStep) {
			clear = append(clear, dir)
		}
	}
	if len(clear) == 0 {
		return vmath.Up
	}
	return clear[rnd.Intn(len(clear))]
}
