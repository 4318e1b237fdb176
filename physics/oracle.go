package physics

import (
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// Hit is a static-world contact: unit separating Normal pointing out of the world, non-negative penetration Depth
type Hit struct {
	Normal vmath.Vec3
	Depth  float64
}

// PushOut returns the translation that separates the shape from the world
func (h Hit) PushOut() vmath.Vec3 {
	return vmath.V3Scale(h.Normal, h.Depth)
}

// Oracle answers shape-vs-static-world queries
// Implementations must be pure: no side effects, safe to call any number of times per substep
// A world that is not loaded yet reports no intersection
type Oracle interface {
	IntersectCapsule(c vmath.Capsule) (Hit, bool)
	IntersectSphere(center vmath.Vec3, radius float64) (Hit, bool)
}

// EmptyWorld never intersects; used before a level is attached and in tests
type EmptyWorld struct{}

func (EmptyWorld) IntersectCapsule(vmath.Capsule) (Hit, bool)          { return Hit{}, false }
func (EmptyWorld) IntersectSphere(vmath.Vec3, float64) (Hit, bool) { return Hit{}, false }
