package system

import (
	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// ChargeSystem drives the throw trigger: begin on press, accumulate and lock on while held, throw on release
type ChargeSystem struct {
	world       *engine.World
	prevTrigger bool
}

func NewChargeSystem(world *engine.World) engine.System {
	s := &ChargeSystem{world: world}
	s.Init()
	return s
}

func (s *ChargeSystem) Init() {
	s.prevTrigger = false
}

func (s *ChargeSystem) Name() string { return "charge" }

func (s *ChargeSystem) Priority() int { return parameter.PriorityCharge }

func (s *ChargeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventGameReset,
	}
}

func (s *ChargeSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			w.Session.DropLockOn(p.ID)
		}
	case event.EventGameReset:
		s.prevTrigger = false
	}
}

func (s *ChargeSystem) Update(dt float64) {
	w := s.world
	sess := w.Session
	trigger := w.Input.Trigger

	if trigger && !s.prevTrigger {
		sess.BeginCharge()
	}
	s.prevTrigger = trigger

	if !sess.Charging {
		return
	}
	if trigger {
		sess.AccumulateCharge(dt * w.Config.Session.ChargeRate)
		sess.SetLockOn(SelectLockOnTarget(w))
		return
	}
	s.Release()
}

// Release ends the charge and throws when ammo allowed it; reports whether a projectile was spawned
func (s *ChargeSystem) Release() bool {
	w := s.world
	sess := w.Session

	level, fire := sess.ReleaseCharge()
	target := sess.LockOn
	sess.SetLockOn(0)
	if !fire {
		return false
	}

	return s.throwCharged(level, target, w.View.Forward())
}

// throwCharged spawns the charged throw along dir; the spent ammo is refunded when no projectile could be spawned
func (s *ChargeSystem) throwCharged(level float64, target component.Target, dir vmath.Vec3) bool {
	w := s.world
	cfg := w.Config.Projectile
	frac := 0.0
	if m := w.Session.ChargeMax(); m > 0 {
		frac = vmath.Clamp(level/m, 0, 1)
	}
	speed := vmath.Lerp(cfg.PlayerSpeedMin, cfg.PlayerSpeedMax, frac)
	if !SpawnPlayerProjectile(w, w.Player.ViewPosition(), dir, speed, target) {
		w.Session.AddAmmo(1)
		return false
	}
	return true
}

// SelectLockOnTarget returns the live enemy closest in angle to the view forward within the acceptance cone
// Zero means none; equal angles keep the earlier enemy
func SelectLockOnTarget(w *engine.World) core.Entity {
	eye := w.Player.ViewPosition()
	forward := w.View.Forward()
	cone := w.Config.Session.LockOnConeDeg * vmath.DegToRad

	var (
		best      core.Entity
		bestAngle float64
	)
	enemies := w.Enemies.Items()
	for i := range enemies {
		e := &enemies[i]
		to := vmath.V3Sub(e.Pos, eye)
		if vmath.V3IsZero(to) {
			continue
		}
		a := vmath.V3Angle(forward, to)
		if a > cone {
			continue
		}
		if best == 0 || a < bestAngle {
			best, bestAngle = e.ID, a
		}
	}
	return best
}
