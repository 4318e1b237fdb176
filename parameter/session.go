package parameter

// Session
const (
	// SessionDuration is the countdown length, whole seconds
	SessionDuration = 120

	// MaxAmmo caps the player's ammo; sessions start full
	MaxAmmo = 5

	// ChargeMax is the upper bound of charge level
	ChargeMax = 1.0

	// ChargeRate is charge gained per second while the trigger is held
	ChargeRate = 1.0

	// LockOnConeDeg is the max angular deviation from view forward for lock-on
	LockOnConeDeg = 11.0

	// ScoreEnemyDefeated is awarded per enemy struck by a player projectile
	ScoreEnemyDefeated = 10

	// ScorePlayerHitPenalty is subtracted when an enemy projectile strikes the player
	ScorePlayerHitPenalty = 5
)
