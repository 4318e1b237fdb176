package physics

import (
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// ApplyHoming turns velocity a fraction of the way toward target, preserving speed
// fraction is per call; callers invoke once per substep
func ApplyHoming(k *core.Kinetic, target vmath.Vec3, fraction float64) {
	k.Vel = vmath.SteerToward(k.Vel, k.Pos, target, fraction)
}

// LeadTarget predicts where to aim a ballistic throw at a moving target
// Flight time is estimated from straight-line distance and refined once with the led position
// The aim point is raised by half g t² so gravity brings the throw down onto the target
func LeadTarget(from, target, targetVel vmath.Vec3, speed, gravity float64) vmath.Vec3 {
	if speed <= 0 {
		return target
	}
	t := vmath.V3Dist(from, target) / speed
	led := vmath.V3AddScaled(target, targetVel, t)
	t = vmath.V3Dist(from, led) / speed
	led = vmath.V3AddScaled(target, targetVel, t)
	led.Y += 0.5 * gravity * t * t
	return led
}
