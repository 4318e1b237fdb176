package physics

import (
	"math"

	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// Integrate advances position by velocity over dt after applying vertical acceleration ay
func Integrate(k *core.Kinetic, ay, dt float64) {
	k.Vel.Y += ay * dt
	k.Pos = vmath.V3AddScaled(k.Pos, k.Vel, dt)
}

// ApplyImpulse adds a velocity delta
func ApplyImpulse(k *core.Kinetic, impulse vmath.Vec3) {
	k.Vel = vmath.V3Add(k.Vel, impulse)
}

// DampingFactor returns the per-step velocity multiplier for exponential decay
// Result is exp(-rate*dt) blended by scale: scale 1 is full damping, 0 none
// Always in (0, 1] for non-negative inputs so damping never flips a component's sign
func DampingFactor(rate, dt, scale float64) float64 {
	return 1 + (math.Exp(-rate*dt)-1)*scale
}

// Damp scales velocity by DampingFactor
func Damp(vel vmath.Vec3, rate, dt, scale float64) vmath.Vec3 {
	return vmath.V3Scale(vel, DampingFactor(rate, dt, scale))
}

func pow(base, exp float64) float64 {
	if base <= 0 {
		return 0
	}
	return math.Pow(base, exp)
}
