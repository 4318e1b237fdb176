package event

// EventType represents the type of game event
type EventType int

const (
	// === Host-facing Events (drained once per frame) ===

	// EventProjectileCollided signals a projectile's first world or player contact
	// Trigger: ProjectileSystem | Consumer: Audio sink | Payload: *ProjectileCollidedPayload
	EventProjectileCollided EventType = iota

	// EventPlayerHit signals an enemy projectile striking the player
	// Trigger: ProjectileSystem | Consumer: Audio sink, HUD | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventEnemyDefeated signals a player projectile striking an enemy
	// Trigger: ProjectileSystem | Consumer: Audio sink, HUD | Payload: *EnemyDefeatedPayload
	EventEnemyDefeated

	// EventProjectileThrown signals a new projectile in flight
	// Trigger: ProjectileSystem on spawn | Consumer: Audio sink | Payload: *ProjectileThrownPayload
	EventProjectileThrown

	// EventProjectileCollected signals a resting projectile picked up
	// Trigger: ProjectileSystem | Consumer: HUD | Payload: *ProjectileCollectedPayload
	EventProjectileCollected

	// EventEnemySpawned signals a new enemy
	// Trigger: SpawnSystem | Consumer: HUD | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventGameOver signals the countdown reaching zero
	// Trigger: Session tick | Consumer: HUD, hosts | Payload: *GameOverPayload
	EventGameOver

	// EventSessionReset signals a fresh session
	// Trigger: World.Reset | Consumer: hosts | Payload: *SessionResetPayload
	EventSessionReset

	// EventPauseChanged signals pause or resume
	// Trigger: World.TogglePause | Consumer: hosts, audio | Payload: *PauseChangedPayload
	EventPauseChanged

	// === Core Commands (dispatched synchronously through the Router) ===

	// EventGameReset clears system-owned collections
	// Trigger: World.Reset | Consumer: all systems | Payload: nil
	EventGameReset EventType = iota + 100

	// EventSpawnProjectile requests a new projectile from its owning system
	// Trigger: ChargeSystem on release, EnemySystem on throw | Consumer: ProjectileSystem | Payload: *SpawnProjectilePayload
	EventSpawnProjectile

	// EventEnemyKilled removes an enemy struck by a player projectile
	// Trigger: ProjectileSystem | Consumer: EnemySystem, ChargeSystem (lock-on) | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventBallClaimed transfers a collectible projectile to an enemy
	// Trigger: ProjectileSystem | Consumer: EnemySystem | Payload: *BallClaimedPayload
	EventBallClaimed

	// EventSpawnEnemy adds an enemy at a position
	// Trigger: SpawnSystem | Consumer: EnemySystem | Payload: *SpawnEnemyPayload
	EventSpawnEnemy
)

var typeNames = map[EventType]string{
	EventProjectileCollided:  "projectile_collided",
	EventPlayerHit:           "player_hit",
	EventEnemyDefeated:       "enemy_defeated",
	EventProjectileThrown:    "projectile_thrown",
	EventProjectileCollected: "projectile_collected",
	EventEnemySpawned:        "enemy_spawned",
	EventGameOver:            "game_over",
	EventSessionReset:        "session_reset",
	EventPauseChanged:        "pause_changed",
	EventGameReset:           "game_reset",
	EventSpawnProjectile:     "spawn_projectile",
	EventEnemyKilled:         "enemy_killed",
	EventBallClaimed:         "ball_claimed",
	EventSpawnEnemy:          "spawn_enemy",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a typed event with an optional payload
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame number at emission
}
