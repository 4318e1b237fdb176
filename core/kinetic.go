package core

import (
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// Entity is a stable simulation identity; zero is never assigned
type Entity uint64

// Kinetic is a point body in world units
type Kinetic struct {
	Pos vmath.Vec3 // World position, units
	Vel vmath.Vec3 // Velocity, units per second
}
