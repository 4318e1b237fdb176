package system

import (
	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// SpawnPlayerProjectile throws from origin along direction; a zero direction is ignored
// The ball starts SpawnOffset ahead so it clears the thrower's own body
func SpawnPlayerProjectile(w *engine.World, origin, direction vmath.Vec3, speed float64, target component.Target) bool {
	dir := vmath.V3Normalize(direction)
	if vmath.V3IsZero(dir) {
		return false
	}
	w.Dispatch(event.EventSpawnProjectile, &event.SpawnProjectilePayload{
		Owner:    component.OwnerPlayer,
		Origin:   vmath.V3AddScaled(origin, dir, w.Config.Projectile.SpawnOffset),
		Velocity: vmath.V3Scale(dir, speed),
		Target:   target,
	})
	return true
}

// SpawnEnemyProjectile throws from an enemy position toward a point
func SpawnEnemyProjectile(w *engine.World, from, toward vmath.Vec3, thrower *component.Enemy) bool {
	p, ok := enemyThrow(w, from, toward, thrower)
	if !ok {
		return false
	}
	w.Dispatch(event.EventSpawnProjectile, p)
	return true
}

// enemyThrow builds the spawn request without dispatching, so the caller can defer it past its own iteration
func enemyThrow(w *engine.World, from, toward vmath.Vec3, thrower *component.Enemy) (*event.SpawnProjectilePayload, bool) {
	dir := vmath.V3Normalize(vmath.V3Sub(toward, from))
	if vmath.V3IsZero(dir) {
		return nil, false
	}
	offset := w.Config.Enemy.Radius + w.Config.Projectile.Radius
	return &event.SpawnProjectilePayload{
		Owner:    component.OwnerEnemy,
		Origin:   vmath.V3AddScaled(from, dir, offset),
		Velocity: vmath.V3Scale(dir, w.Config.Projectile.EnemySpeed),
		Thrower:  thrower.ID,
	}, true
}

// EnemyAimPoint is where an enemy throws: the player center, optionally led for player motion and drop
func EnemyAimPoint(w *engine.World, from vmath.Vec3) vmath.Vec3 {
	target := w.PlayerTarget()
	if !w.Config.Enemy.LeadTarget {
		return target
	}
	cfg := w.Config.Projectile
	return physics.LeadTarget(from, target, w.Player.Vel, cfg.EnemySpeed, cfg.Gravity)
}
