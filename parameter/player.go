package parameter

// Player Capsule
const (
	// PlayerRadius is the fixed capsule radius
	PlayerRadius = 0.35

	// PlayerSpawnStartY and PlayerSpawnEndY define the spawn capsule segment at the origin
	PlayerSpawnStartY = 0.35
	PlayerSpawnEndY   = 1.0

	// PlayerOutOfBoundsY triggers respawn when the view position falls to or below it
	PlayerOutOfBoundsY = -25.0
)

// Player Movement
const (
	// PlayerGroundAccel is the movement acceleration while grounded, units/s²
	PlayerGroundAccel = 25.0

	// PlayerAirAccel is the movement acceleration while airborne, units/s²
	PlayerAirAccel = 8.0

	// PlayerJumpSpeed is the vertical velocity set on jump
	PlayerJumpSpeed = 15.0
)

// View
const (
	// LookSensitivity converts pointer pixels to radians
	LookSensitivity = 1.0 / 500.0

	// TouchSensitivity converts touch drag pixels to radians
	TouchSensitivity = 1.0 / 250.0

	// PitchLimit keeps the view off the poles, radians
	PitchLimit = 1.5607963267948966 // pi/2 - 0.01
)
