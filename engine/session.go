package engine

import (
	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/config"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// Status is the session state
type Status uint8

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "playing"
	}
}

// Session owns score, countdown, charge, ammo, lock-on and difficulty
// Every mutator clamps so out-of-range values are never observable
type Session struct {
	cfg     config.SessionConfig
	diffCfg config.DifficultyConfig

	Status        Status
	Score         int
	TimeRemaining int

	Charging bool
	Charge   float64
	Ammo     int

	// LockOn is the enemy the next player throw homes on; Kind is TargetNone when unset
	LockOn component.Target

	// Elapsed is simulated play time since reset, seconds
	Elapsed    float64
	Difficulty Difficulty
}

func NewSession(cfg config.SessionConfig, diffCfg config.DifficultyConfig) *Session {
	s := &Session{cfg: cfg, diffCfg: diffCfg}
	s.Reset()
	return s
}

// Reset restores initial values and returns to Playing
func (s *Session) Reset() {
	s.Status = StatusPlaying
	s.Score = 0
	s.TimeRemaining = s.cfg.Duration
	s.Charging = false
	s.Charge = 0
	s.Ammo = s.cfg.MaxAmmo
	s.LockOn = component.Target{}
	s.Elapsed = 0
	s.Difficulty = ComputeDifficulty(s.diffCfg, 0)
}

func (s *Session) Playing() bool  { return s.Status == StatusPlaying }
func (s *Session) Paused() bool   { return s.Status == StatusPaused }
func (s *Session) GameOver() bool { return s.Status == StatusGameOver }
func (s *Session) MaxAmmo() int   { return s.cfg.MaxAmmo }
func (s *Session) ChargeMax() float64 {
	return s.cfg.ChargeMax
}

// Pause moves Playing to Paused; reports whether the state changed
func (s *Session) Pause() bool {
	if s.Status != StatusPlaying {
		return false
	}
	s.Status = StatusPaused
	return true
}

// Resume moves Paused to Playing; GameOver only leaves through Reset
func (s *Session) Resume() bool {
	if s.Status != StatusPaused {
		return false
	}
	s.Status = StatusPlaying
	return true
}

// Tick1Hz counts down one second while Playing
// Returns true on the tick that reaches zero and ends the game
func (s *Session) Tick1Hz() bool {
	if s.Status != StatusPlaying {
		return false
	}
	if s.TimeRemaining > 0 {
		s.TimeRemaining--
	}
	if s.TimeRemaining == 0 {
		s.Status = StatusGameOver
		s.Charging = false
		s.Charge = 0
		s.LockOn = component.Target{}
		return true
	}
	return false
}

// Advance accumulates play time and refreshes difficulty when its level changes
func (s *Session) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.Elapsed += dt
	if next := ComputeDifficulty(s.diffCfg, s.Elapsed); next.Level != s.Difficulty.Level {
		s.Difficulty = next
	}
}

// AddScore awards points, returns the new score
func (s *Session) AddScore(n int) int {
	if n > 0 {
		s.Score += n
	}
	return s.Score
}

// Penalize subtracts points, flooring at zero; returns the new score
func (s *Session) Penalize(n int) int {
	if n > 0 {
		s.Score -= n
		if s.Score < 0 {
			s.Score = 0
		}
	}
	return s.Score
}

// AddAmmo clamps to [0, MaxAmmo]; returns the new count
func (s *Session) AddAmmo(n int) int {
	s.Ammo = vmath.ClampInt(s.Ammo+n, 0, s.cfg.MaxAmmo)
	return s.Ammo
}

// BeginCharge starts charging when Playing with ammo available
func (s *Session) BeginCharge() bool {
	if s.Status != StatusPlaying || s.Ammo <= 0 || s.Charging {
		return false
	}
	s.Charging = true
	s.Charge = 0
	return true
}

// AccumulateCharge raises charge linearly, clamped to ChargeMax
func (s *Session) AccumulateCharge(amount float64) {
	if !s.Charging || amount <= 0 {
		return
	}
	s.Charge = vmath.Clamp(s.Charge+amount, 0, s.cfg.ChargeMax)
}

// ReleaseCharge ends charging and always zeroes charge
// fire is true when a throw should happen; ammo is decremented in that case only
func (s *Session) ReleaseCharge() (level float64, fire bool) {
	level = s.Charge
	wasCharging := s.Charging
	s.Charging = false
	s.Charge = 0

	if !wasCharging || s.Status != StatusPlaying || s.Ammo <= 0 {
		return level, false
	}
	s.Ammo--
	return level, true
}

// ChargeFraction is charge normalized to [0, 1]
func (s *Session) ChargeFraction() float64 {
	if s.cfg.ChargeMax <= 0 {
		return 0
	}
	return vmath.Clamp(s.Charge/s.cfg.ChargeMax, 0, 1)
}

// SetLockOn targets an enemy, or clears when id is zero
func (s *Session) SetLockOn(id core.Entity) {
	if id == 0 {
		s.LockOn = component.Target{}
		return
	}
	s.LockOn = component.EnemyTarget(id)
}

// DropLockOn clears lock-on if it references id
func (s *Session) DropLockOn(id core.Entity) {
	if s.LockOn.Kind == component.TargetEnemy && s.LockOn.ID == id {
		s.LockOn = component.Target{}
	}
}
