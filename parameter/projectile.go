package parameter

// Projectile Body
const (
	// ProjectileRadius is the collision sphere radius
	ProjectileRadius = 0.2

	// ProjectileGravity is the vertical acceleration on projectiles, units/s²
	ProjectileGravity = 30.0

	// ProjectileMaxRange destroys projectiles farther than this from their origin
	ProjectileMaxRange = 80.0

	// ProjectileRestitution scales speed after the first world contact
	ProjectileRestitution = 0.4

	// ProjectileRestFriction is the tangential speed retained per second on ground contact while resting
	ProjectileRestFriction = 0.05

	// ProjectileSpawnOffset pushes the spawn point ahead of the thrower
	ProjectileSpawnOffset = 0.6
)

// Throw Speeds
const (
	// PlayerThrowSpeedMin is the release speed at zero charge
	PlayerThrowSpeedMin = 15.0

	// PlayerThrowSpeedMax is the release speed at full charge
	PlayerThrowSpeedMax = 40.0

	// EnemyThrowSpeed is the release speed of enemy throws
	EnemyThrowSpeed = 18.0
)

// Homing (fraction of the remaining angle closed per substep)
const (
	PlayerHomingFraction = 0.08
	EnemyHomingFraction  = 0.02
)

// Contact Radii, center to center
const (
	// PickupRadius applies to resting projectiles near the player or an enemy
	PickupRadius = 1.2

	// PlayerHitRadius applies to flying enemy projectiles reaching the player view
	PlayerHitRadius = 0.9

	// EnemyHitRadius applies to flying player projectiles reaching an enemy (smallest of all checks)
	EnemyHitRadius = 0.7
)
