package component

import (
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// PlayerState is the player body, owned by the player system
type PlayerState struct {
	Collider vmath.Capsule
	Vel      vmath.Vec3

	// Grounded is recomputed every substep from that substep's collision result
	Grounded bool
}

// ViewPosition is the camera eye: the capsule's upper endpoint
func (p *PlayerState) ViewPosition() vmath.Vec3 {
	return p.Collider.End
}

// Spawn places the capsule at its spawn pose at rest
func (p *PlayerState) Spawn(start, end vmath.Vec3, radius float64) {
	p.Collider = vmath.NewCapsule(start, end, radius)
	p.Vel = vmath.Vec3{}
	p.Grounded = false
}
