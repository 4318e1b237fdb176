package system

import (
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

// ProjectileSystem owns the projectile collection: homing, flight, bounce-to-rest, pickup, hits, and range culling
//
// Each substep runs a read pass that records removals, claims and kills, then applies them in order
// so no collection is filtered while it is being scanned
type ProjectileSystem struct {
	world *engine.World

	// Pending mutations, reused across substeps
	removals []core.Entity
	claims   []event.BallClaimedPayload
	kills    []core.Entity
	claimed  map[core.Entity]bool // Enemies that took a ball this substep
	killed   map[core.Entity]bool

	statLive   *atomic.Int64
	statThrown *atomic.Int64
}

func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{
		world:   world,
		claimed: make(map[core.Entity]bool),
		killed:  make(map[core.Entity]bool),
	}
	s.statLive = world.Status.Ints.Get(status.KeyProjectilesLive)
	s.statThrown = world.Status.Ints.Get(status.KeyProjectileThrow)
	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.removals = s.removals[:0]
	s.claims = s.claims[:0]
	s.kills = s.kills[:0]
	clear(s.claimed)
	clear(s.killed)
}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpawnProjectile,
		event.EventGameReset,
	}
}

func (s *ProjectileSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventSpawnProjectile:
		if p, ok := ev.Payload.(*event.SpawnProjectilePayload); ok {
			s.spawn(p)
		}
	case event.EventGameReset:
		w.Projectiles.Clear()
		s.statLive.Store(0)
	}
}

// spawn creates a flying projectile and announces it
func (s *ProjectileSystem) spawn(p *event.SpawnProjectilePayload) {
	w := s.world
	id := w.CreateEntity()
	w.Projectiles.Add(id, component.Projectile{
		ID:      id,
		Kinetic: core.Kinetic{Pos: p.Origin, Vel: p.Velocity},
		Owner:   p.Owner,
		Origin:  p.Origin,
		Thrower: p.Thrower,
		Flight:  &component.Flight{Target: p.Target},
	})
	s.statThrown.Add(1)
	s.statLive.Store(int64(w.Projectiles.Len()))

	w.Emit(event.EventProjectileThrown, &event.ProjectileThrownPayload{
		ID:       id,
		Owner:    p.Owner,
		Position: p.Origin,
		Speed:    vmath.V3Mag(p.Velocity),
		Homing:   !p.Target.IsNone(),
	})
}

func (s *ProjectileSystem) Update(dt float64) {
	w := s.world
	s.Init()

	items := w.Projectiles.Items()
	for i := range items {
		s.step(&items[i], dt)
	}
	s.apply()
}

// step advances one projectile and records any mutation it causes outside the projectile itself
func (s *ProjectileSystem) step(p *component.Projectile, dt float64) {
	w := s.world
	cfg := w.Config.Projectile

	if p.Flying() {
		s.steer(p)
	}

	physics.Integrate(&p.Kinetic, -cfg.Gravity, dt)

	if hit, ok := w.Oracle.IntersectSphere(p.Pos, cfg.Radius); ok {
		p.Pos = vmath.V3Add(p.Pos, physics.ContactPush(hit, parameter.ContactSkin))
		if p.Flying() {
			p.Vel = physics.BounceResponse(p.Vel, hit, cfg.Restitution)
			p.Land()
			s.emitCollided(p)
		} else {
			p.Vel = physics.SettleResponse(p.Vel, hit, cfg.RestFriction, dt)
		}
	}

	switch {
	case !p.Flying():
		s.resolvePickup(p)
	case p.Owner == component.OwnerEnemy:
		s.resolvePlayerHit(p)
	default:
		s.resolveEnemyHit(p)
	}

	if vmath.V3Dist(p.Pos, p.Origin) > cfg.MaxRange {
		s.remove(p.ID)
	}
}

// steer applies homing; an unresolvable target degrades the flight to ballistic
func (s *ProjectileSystem) steer(p *component.Projectile) {
	w := s.world
	cfg := w.Config.Projectile

	target := p.Flight.Target
	if target.IsNone() {
		if p.Owner != component.OwnerEnemy {
			return
		}
		target = component.PlayerTarget()
	}

	pos, ok := w.ResolveTarget(target)
	if !ok {
		p.Flight.Target = component.Target{}
		return
	}

	fraction := cfg.PlayerHoming
	if p.Owner == component.OwnerEnemy {
		fraction = cfg.EnemyHoming
	}
	physics.ApplyHoming(&p.Kinetic, pos, fraction)
}

// resolvePickup hands a collectible ball to the player, or failing that to the first free enemy in range
func (s *ProjectileSystem) resolvePickup(p *component.Projectile) {
	w := s.world
	r := w.Config.Projectile.PickupRadius

	if s.nearPlayer(p.Pos, r) {
		ammo := w.Session.AddAmmo(1)
		w.Emit(event.EventProjectileCollected, &event.ProjectileCollectedPayload{ID: p.ID, Ammo: ammo})
		s.remove(p.ID)
		return
	}

	enemies := w.Enemies.Items()
	for i := range enemies {
		e := &enemies[i]
		if e.Holding || s.claimed[e.ID] || s.killed[e.ID] {
			continue
		}
		if vmath.V3DistSq(e.Pos, p.Pos) > r*r {
			continue
		}
		s.claimed[e.ID] = true
		s.claims = append(s.claims, event.BallClaimedPayload{EnemyID: e.ID, ProjectileID: p.ID})
		w.Emit(event.EventProjectileCollected, &event.ProjectileCollectedPayload{ID: p.ID, EnemyID: e.ID})
		s.remove(p.ID)
		return
	}
}

func (s *ProjectileSystem) resolvePlayerHit(p *component.Projectile) {
	w := s.world
	cfg := w.Config
	if !s.nearPlayer(p.Pos, cfg.Projectile.PlayerHitRange) {
		return
	}
	score := w.Session.Penalize(cfg.Session.HitPenalty)
	s.deflect(p)
	s.emitCollided(p)
	w.Emit(event.EventPlayerHit, &event.PlayerHitPayload{
		ProjectileID: p.ID,
		Thrower:      p.Thrower,
		Penalty:      cfg.Session.HitPenalty,
		Score:        score,
	})
}

// resolveEnemyHit credits only the first enemy in iteration order
func (s *ProjectileSystem) resolveEnemyHit(p *component.Projectile) {
	w := s.world
	cfg := w.Config
	r := cfg.Projectile.EnemyHitRange

	enemies := w.Enemies.Items()
	for i := range enemies {
		e := &enemies[i]
		if s.killed[e.ID] || vmath.V3DistSq(e.Pos, p.Pos) > r*r {
			continue
		}
		score := w.Session.AddScore(cfg.Session.KillScore)
		s.killed[e.ID] = true
		s.kills = append(s.kills, e.ID)
		s.deflect(p)
		s.emitCollided(p)
		w.Emit(event.EventEnemyDefeated, &event.EnemyDefeatedPayload{
			EnemyID:      e.ID,
			ProjectileID: p.ID,
			Position:     e.Pos,
			Award:        cfg.Session.KillScore,
			Score:        score,
		})
		return
	}
}

// deflect knocks a ball back off a body it struck and ends its flight
func (s *ProjectileSystem) deflect(p *component.Projectile) {
	p.Vel = vmath.V3Scale(p.Vel, -s.world.Config.Projectile.Restitution)
	p.Vel.Y = 0
	p.Land()
}

// nearPlayer measures to the capsule segment so reach matches the body at any height
func (s *ProjectileSystem) nearPlayer(pos vmath.Vec3, r float64) bool {
	c := s.world.Player.Collider
	return vmath.SegmentPointDistSq(c.Start, c.End, pos) <= r*r
}

func (s *ProjectileSystem) emitCollided(p *component.Projectile) {
	s.world.Emit(event.EventProjectileCollided, &event.ProjectileCollidedPayload{
		ID:       p.ID,
		Owner:    p.Owner,
		Position: p.Pos,
	})
}

func (s *ProjectileSystem) remove(id core.Entity) {
	for _, r := range s.removals {
		if r == id {
			return
		}
	}
	s.removals = append(s.removals, id)
}

// apply is the mutation pass; removals go first so pointers from the read pass are never reused
func (s *ProjectileSystem) apply() {
	w := s.world
	for _, id := range s.removals {
		w.Projectiles.Remove(id)
	}
	for i := range s.claims {
		w.Dispatch(event.EventBallClaimed, &s.claims[i])
	}
	for _, id := range s.kills {
		w.Dispatch(event.EventEnemyKilled, &event.EnemyKilledPayload{ID: id})
	}
	s.statLive.Store(int64(w.Projectiles.Len()))
}
