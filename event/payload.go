package event

import (
	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// ProjectileCollidedPayload carries the contact point for positional audio
type ProjectileCollidedPayload struct {
	ID       core.Entity     `msgpack:"id"`
	Owner    component.Owner `msgpack:"owner"`
	Position vmath.Vec3      `msgpack:"pos"`
}

// PlayerHitPayload reports the applied penalty and resulting score
type PlayerHitPayload struct {
	ProjectileID core.Entity `msgpack:"projectile"`
	Thrower      core.Entity `msgpack:"thrower"`
	Penalty      int         `msgpack:"penalty"`
	Score        int         `msgpack:"score"`
}

// EnemyDefeatedPayload reports the defeated enemy and awarded score
type EnemyDefeatedPayload struct {
	EnemyID      core.Entity `msgpack:"enemy"`
	ProjectileID core.Entity `msgpack:"projectile"`
	Position     vmath.Vec3  `msgpack:"pos"`
	Award        int         `msgpack:"award"`
	Score        int         `msgpack:"score"`
}

type ProjectileThrownPayload struct {
	ID       core.Entity     `msgpack:"id"`
	Owner    component.Owner `msgpack:"owner"`
	Position vmath.Vec3      `msgpack:"pos"`
	Speed    float64         `msgpack:"speed"`
	Homing   bool            `msgpack:"homing"`
}

// ProjectileCollectedPayload names the collector; EnemyID is zero for the player
type ProjectileCollectedPayload struct {
	ID      core.Entity `msgpack:"id"`
	EnemyID core.Entity `msgpack:"enemy"`
	Ammo    int         `msgpack:"ammo"`
}

type EnemySpawnedPayload struct {
	ID       core.Entity `msgpack:"id"`
	Position vmath.Vec3  `msgpack:"pos"`
}

type GameOverPayload struct {
	Score int `msgpack:"score"`
}

type SessionResetPayload struct {
	RunID string `msgpack:"run_id"`
}

type PauseChangedPayload struct {
	Paused bool `msgpack:"paused"`
}

// SpawnProjectilePayload describes a throw; Thrower is zero for player throws
type SpawnProjectilePayload struct {
	Owner    component.Owner
	Origin   vmath.Vec3
	Velocity vmath.Vec3
	Target   component.Target
	Thrower  core.Entity
}

type EnemyKilledPayload struct {
	ID core.Entity
}

type BallClaimedPayload struct {
	EnemyID      core.Entity
	ProjectileID core.Entity
}

type SpawnEnemyPayload struct {
	Position vmath.Vec3
}
