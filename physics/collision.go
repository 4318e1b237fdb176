package physics

import (
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// SlideResponse removes the velocity component along the contact normal
// Both approaching and separating components are dropped, matching capsule walking on ramps
func SlideResponse(vel vmath.Vec3, h Hit) vmath.Vec3 {
	return vmath.V3RemoveComponent(vel, h.Normal)
}

// BounceResponse reflects vel about the contact normal, scales it by restitution, and flattens it
// The vertical component is zeroed so a bounced ball rolls instead of hopping
func BounceResponse(vel vmath.Vec3, h Hit, restitution float64) vmath.Vec3 {
	out := vmath.V3Scale(vmath.V3Reflect(vel, h.Normal), restitution)
	out.Y = 0
	return out
}

// SettleResponse handles a resting ball touching the world
// Downward motion into a floor stops; tangential speed decays by friction retained per second
func SettleResponse(vel vmath.Vec3, h Hit, friction, dt float64) vmath.Vec3 {
	if into := vmath.V3Dot(vel, h.Normal); into < 0 {
		vel = vmath.V3AddScaled(vel, h.Normal, -into)
	}
	if h.Normal.Y > 0 {
		keep := pow(friction, dt)
		vel.X *= keep
		vel.Z *= keep
	}
	return vel
}

// IsGround reports whether a contact normal supports a body from below
func IsGround(h Hit) bool {
	return h.Normal.Y > 0
}

// ContactPush is the push-out translation that leaves skin of penetration in place
func ContactPush(h Hit, skin float64) vmath.Vec3 {
	d := h.Depth - skin
	if d <= 0 {
		return vmath.Vec3{}
	}
	return vmath.V3Scale(h.Normal, d)
}
