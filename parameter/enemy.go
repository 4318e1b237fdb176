package parameter

// Enemy Body
const (
	// EnemyRadius is the enemy collision sphere radius
	EnemyRadius = 0.5

	// EnemySteerRate blends current horizontal velocity toward desired velocity, 1/s
	EnemySteerRate = 6.0

	// EnemyStopDistance is the closest an enemy walks toward the player
	EnemyStopDistance = 3.0

	// EnemyThrowRange is the preferred distance kept while holding a ball
	EnemyThrowRange = 12.0

	// EnemyMaxAlive caps concurrent enemies
	EnemyMaxAlive = 12
)

// Enemy Spawn Ring
const (
	EnemySpawnRadiusMin = 10.0
	EnemySpawnRadiusMax = 18.0
	EnemySpawnHeight    = 1.0

	// EnemySpawnJitter is the relative randomization of spawn intervals
	EnemySpawnJitter = 0.25
)

// Enemy Throwing
const (
	// EnemyThrowInterval is the cooldown between throws, seconds
	EnemyThrowInterval = 2.0

	// EnemyThreatThrowScale shortens the throw interval by this fraction at full threat
	EnemyThreatThrowScale = 0.5

	// EnemyLeadTarget enables predicted aim at the player's future position
	EnemyLeadTarget = true
)

// Threat Assessment
const (
	// ThreatRadius is the max distance for an incoming projectile to count
	ThreatRadius = 10.0

	// ThreatHorizon is the extrapolation window, seconds
	ThreatHorizon = 0.5

	// ThreatProximity is the closest-approach distance that counts as incoming
	ThreatProximity = 1.5

	// ThreatNormalizer converts threat count into [0,1] level
	ThreatNormalizer = 3.0

	// ThreatSpeedScale increases movement speed by this fraction at full threat
	ThreatSpeedScale = 0.5
)

// Dodging
const (
	// DodgeClearance is the obstacle-free distance required for a candidate direction
	DodgeClearance = 2.0

	// DodgeDuration is how long steering is suspended after an impulse, seconds
	DodgeDuration = 0.35

	// DodgeRandomBonus is the max random addition to dodge speed
	DodgeRandomBonus = 2.0

	// DodgeThreatBonus is the dodge speed added at full threat
	DodgeThreatBonus = 3.0
)

// Enemy Spawn Timing
const (
	// EnemyFirstSpawnDelay is the play time before the first spawn, seconds
	EnemyFirstSpawnDelay = 1.0

	// EnemySpawnAttempts bounds retries when a ring point is inside geometry
	EnemySpawnAttempts = 4
)
