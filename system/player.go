package system

import (
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// PlayerSystem turns input into view rotation and capsule motion, then resolves the capsule against the world
type PlayerSystem struct {
	world *engine.World
}

func NewPlayerSystem(world *engine.World) engine.System {
	return &PlayerSystem{world: world}
}

func (s *PlayerSystem) Init() {}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update(dt float64) {
	in := s.world.Input
	s.look(in)
	s.applyControls(dt, in)
	s.integrate(dt)
}

func (s *PlayerSystem) look(in input.Snapshot) {
	cfg := s.world.Config.Player
	dYaw := -(in.Pointer.DX*cfg.LookSensitivity + in.Touch.DX*cfg.TouchSensitivity)
	dPitch := -(in.Pointer.DY*cfg.LookSensitivity + in.Touch.DY*cfg.TouchSensitivity)
	if dYaw == 0 && dPitch == 0 {
		return
	}
	s.world.View.Turn(dYaw, dPitch, parameter.PitchLimit)
}

// applyControls accelerates along the horizontal view basis; jump only leaves the ground
func (s *PlayerSystem) applyControls(dt float64, in input.Snapshot) {
	cfg := s.world.Config.Player
	p := &s.world.Player

	accel := cfg.AirAccel
	if p.Grounded {
		accel = cfg.GroundAccel
	}

	forward := s.world.View.HorizontalForward()
	side := s.world.View.Side()

	var dir vmath.Vec3
	if in.Forward {
		dir = vmath.V3Add(dir, forward)
	}
	if in.Back {
		dir = vmath.V3Sub(dir, forward)
	}
	if in.Left {
		dir = vmath.V3Sub(dir, side)
	}
	if in.Right {
		dir = vmath.V3Add(dir, side)
	}
	p.Vel = vmath.V3AddScaled(p.Vel, vmath.V3Normalize(dir), accel*dt)

	if p.Grounded && in.Jump {
		p.Vel.Y = cfg.JumpSpeed
	}
}

// integrate damps, applies gravity while airborne, moves, and slides along contacts
func (s *PlayerSystem) integrate(dt float64) {
	cfg := s.world.Config.Player
	p := &s.world.Player

	scale := 1.0
	if !p.Grounded {
		p.Vel.Y -= cfg.Gravity * dt
		scale = cfg.AirDampingFactor
	}
	p.Vel = physics.Damp(p.Vel, cfg.DampingRate, dt, scale)

	p.Collider.Translate(vmath.V3Scale(p.Vel, dt))

	p.Grounded = false
	hit, ok := s.world.Oracle.IntersectCapsule(p.Collider)
	if !ok {
		return
	}
	p.Grounded = physics.IsGround(hit)
	p.Vel = physics.SlideResponse(p.Vel, hit)
	p.Collider.Translate(physics.ContactPush(hit, parameter.ContactSkin))
}
