package component

import (
	"math"

	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// View is the camera orientation, yaw applied before pitch
// Zero yaw looks down -Z; positive pitch looks up
type View struct {
	Yaw   float64
	Pitch float64
}

// Forward is the full 3D look direction
func (v View) Forward() vmath.Vec3 {
	cp := math.Cos(v.Pitch)
	return vmath.Vec3{
		X: -math.Sin(v.Yaw) * cp,
		Y: math.Sin(v.Pitch),
		Z: -math.Cos(v.Yaw) * cp,
	}
}

// HorizontalForward is Forward flattened onto the ground plane, zero when looking straight up or down
func (v View) HorizontalForward() vmath.Vec3 {
	return vmath.V3Horizontal(v.Forward())
}

// Side is the horizontal right vector
func (v View) Side() vmath.Vec3 {
	return vmath.V3Normalize(vmath.V3Cross(v.HorizontalForward(), vmath.Up))
}

// Turn applies a look delta in radians, clamping pitch to ±limit
func (v *View) Turn(dYaw, dPitch, limit float64) {
	v.Yaw = math.Mod(v.Yaw+dYaw, 2*math.Pi)
	v.Pitch = vmath.Clamp(v.Pitch+dPitch, -limit, limit)
}
