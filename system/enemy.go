package system

import (
	"log"
	"sync/atomic"

	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/status"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// EnemySystem owns the enemy collection and runs each enemy's behavior state machine
type EnemySystem struct {
	world *engine.World

	throws []*event.SpawnProjectilePayload

	statLive   *atomic.Int64
	statDodges *atomic.Int64
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{world: world}
	s.statLive = world.Status.Ints.Get(status.KeyEnemiesLive)
	s.statDodges = world.Status.Ints.Get(status.KeyEnemyDodges)
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.throws = s.throws[:0]
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpawnEnemy,
		event.EventEnemyKilled,
		event.EventBallClaimed,
		event.EventGameReset,
	}
}

func (s *EnemySystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventSpawnEnemy:
		if p, ok := ev.Payload.(*event.SpawnEnemyPayload); ok {
			s.Spawn(p.Position)
		}

	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			w.Enemies.Remove(p.ID)
		}

	case event.EventBallClaimed:
		if p, ok := ev.Payload.(*event.BallClaimedPayload); ok {
			if e, ok := w.Enemies.Get(p.EnemyID); ok && !e.Holding {
				e.Holding = true
				e.Behavior = component.Throwing{}
			}
		}

	case event.EventGameReset:
		w.Enemies.Clear()
	}
	s.statLive.Store(int64(w.Enemies.Len()))
}

// Spawn adds an enemy at pos using the current difficulty
func (s *EnemySystem) Spawn(pos vmath.Vec3) core.Entity {
	w := s.world
	diff := w.Session.Difficulty
	id := w.CreateEntity()
	w.Enemies.Add(id, component.Enemy{
		ID:            id,
		Kinetic:       core.Kinetic{Pos: pos},
		Behavior:      component.SeekingPlayer{},
		NextThrow:     w.Time + w.Config.Enemy.ThrowInterval,
		DodgeCooldown: diff.DodgeCooldown,
		LastDodge:     w.Time - diff.DodgeCooldown,
	})
	s.statLive.Store(int64(w.Enemies.Len()))
	w.Emit(event.EventEnemySpawned, &event.EnemySpawnedPayload{ID: id, Position: pos})
	return id
}

func (s *EnemySystem) Update(dt float64) {
	w := s.world
	s.Init()

	projectiles := w.Projectiles.Items()
	enemies := w.Enemies.Items()
	for i := range enemies {
		e := &enemies[i]
		s.assessThreat(e, projectiles)
		if _, dodging := e.Behavior.(component.Dodging); !dodging {
			s.think(e, dt)
		}
		s.move(e, dt)
	}

	// Throws go to the projectile system after the scan so the projectile slice is never grown mid-read
	for _, p := range s.throws {
		w.Dispatch(event.EventSpawnProjectile, p)
	}
	s.throws = s.throws[:0]
}

// assessThreat updates threat level and starts a dodge when threatened and off cooldown
func (s *EnemySystem) assessThreat(e *component.Enemy, projectiles []component.Projectile) {
	w := s.world
	cfg := w.Config.Enemy
	now := w.Time

	if d, ok := e.Behavior.(component.Dodging); ok && now >= d.Until {
		e.Behavior = s.idleBehavior(e)
	}

	count := CountThreats(cfg, projectiles, e)
	e.Threat = ThreatLevel(cfg, count)
	if count == 0 || !e.CanDodge(now) {
		return
	}

	facing := vmath.V3Sub(w.PlayerTarget(), e.Pos)
	dir := ChooseEvasive(w.Oracle, w.Rand, e.Pos, facing, cfg.DodgeClearance)

	diff := w.Session.Difficulty
	speed := diff.DodgeSpeed + w.Rand.Float64()*cfg.DodgeRandomBonus + e.Threat*cfg.DodgeThreatBonus
	physics.ApplyImpulse(&e.Kinetic, vmath.V3Scale(dir, speed))

	e.LastDodge = now
	e.DodgeCooldown = diff.DodgeCooldown
	e.Behavior = component.Dodging{Until: now + cfg.DodgeDuration}
	s.statDodges.Add(1)
}

func (s *EnemySystem) idleBehavior(e *component.Enemy) component.Behavior {
	if e.Holding {
		return component.Throwing{}
	}
	return component.SeekingPlayer{}
}

// think picks the behavior for this substep and sets the desired horizontal velocity
func (s *EnemySystem) think(e *component.Enemy, dt float64) {
	w := s.world
	cfg := w.Config.Enemy
	now := w.Time
	player := w.PlayerTarget()

	speed := w.Session.Difficulty.MoveSpeed * (1 + e.Threat*cfg.ThreatSpeedScale)

	if e.Holding {
		e.Behavior = component.Throwing{}
		// threat pulls the pending throw earlier
		eager := cfg.ThrowInterval * e.Threat * cfg.ThreatThrowScale
		if now >= e.NextThrow-eager {
			s.throw(e)
			e.Holding = false
			e.NextThrow = now + cfg.ThrowInterval
			e.Behavior = component.SeekingPlayer{}
			s.steer(e, e.Pos, 0, 0, dt)
			return
		}
		s.steer(e, player, cfg.ThrowRange, speed, dt)
		return
	}

	if ball, pos, ok := s.nearestBall(e.Pos); ok {
		e.Behavior = component.SeekingBall{Ball: ball}
		s.steer(e, pos, 0, speed, dt)
		return
	}

	e.Behavior = component.SeekingPlayer{}
	s.steer(e, player, cfg.StopDistance, speed, dt)
}

func (s *EnemySystem) throw(e *component.Enemy) {
	w := s.world
	p, ok := enemyThrow(w, e.Pos, EnemyAimPoint(w, e.Pos), e)
	if !ok {
		return
	}
	s.throws = append(s.throws, p)
}

// nearestBall finds the closest collectible; ties keep the earlier projectile
func (s *EnemySystem) nearestBall(pos vmath.Vec3) (core.Entity, vmath.Vec3, bool) {
	var (
		best   core.Entity
		bestAt vmath.Vec3
		bestD  float64
		found  bool
	)
	projectiles := s.world.Projectiles.Items()
	for i := range projectiles {
		p := &projectiles[i]
		if p.Flying() {
			continue
		}
		d := vmath.V3DistSq(pos, p.Pos)
		if !found || d < bestD {
			best, bestAt, bestD, found = p.ID, p.Pos, d, true
		}
	}
	return best, bestAt, found
}

// steer blends horizontal velocity toward target at speed, halting inside stop distance
func (s *EnemySystem) steer(e *component.Enemy, target vmath.Vec3, stop, speed, dt float64) {
	to := vmath.Vec3{X: target.X - e.Pos.X, Z: target.Z - e.Pos.Z}
	var want vmath.Vec3
	if vmath.V3Mag(to) > stop {
		want = vmath.V3Scale(vmath.V3Normalize(to), speed)
	}
	k := vmath.Clamp(s.world.Config.Enemy.SteerRate*dt, 0, 1)
	e.Vel.X = vmath.Lerp(e.Vel.X, want.X, k)
	e.Vel.Z = vmath.Lerp(e.Vel.Z, want.Z, k)
}

// move integrates under gravity and resolves the body sphere against the world
func (s *EnemySystem) move(e *component.Enemy, dt float64) {
	w := s.world
	cfg := w.Config

	// Dodging keeps the impulse and only damps
	_, dodging := e.Behavior.(component.Dodging)
	if dodging {
		e.Vel.X, e.Vel.Z = dampXZ(e.Vel, cfg.Player.DampingRate, dt)
	}

	physics.Integrate(&e.Kinetic, -cfg.Player.Gravity, dt)

	if hit, ok := w.Oracle.IntersectSphere(e.Pos, cfg.Enemy.Radius); ok {
		e.Vel = physics.SlideResponse(e.Vel, hit)
		e.Pos = vmath.V3Add(e.Pos, physics.ContactPush(hit, parameter.ContactSkin))
	}

	if e.Pos.Y <= cfg.Player.OutOfBoundsY {
		log.Printf("enemy %d out of bounds, relocating", e.ID)
		e.Pos = SpawnPoint(w)
		e.Vel = vmath.Vec3{}
	}
}

func dampXZ(v vmath.Vec3, rate, dt float64) (float64, float64) {
	k := physics.DampingFactor(rate, dt, 1)
	return v.X * k, v.Z * k
}
