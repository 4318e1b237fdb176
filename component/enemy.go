package component

import (
	"github.com/DJG-inc/DodgeBallThreeJS/core"
)

// Behavior is the enemy state machine variant; each state carries only its own fields
type Behavior interface {
	Name() string
	behavior()
}

// SeekingBall walks toward a collectible projectile
type SeekingBall struct {
	Ball core.Entity
}

// SeekingPlayer walks toward the player when no ball is available
type SeekingPlayer struct{}

// Throwing holds a ball and waits for the throw cooldown
type Throwing struct{}

// Dodging suspends steering until the given simulation time
type Dodging struct {
	Until float64
}

func (SeekingBall) Name() string   { return "seek_ball" }
func (SeekingPlayer) Name() string { return "seek_player" }
func (Throwing) Name() string      { return "throwing" }
func (Dodging) Name() string       { return "dodging" }

func (SeekingBall) behavior()   {}
func (SeekingPlayer) behavior() {}
func (Throwing) behavior()      {}
func (Dodging) behavior()       {}

// Enemy is an AI opponent, owned by the enemy system
// Times are simulation seconds since session start
type Enemy struct {
	ID core.Entity
	core.Kinetic

	Holding  bool // Possesses a projectile; at most one
	Behavior Behavior

	NextThrow     float64
	LastDodge     float64
	DodgeCooldown float64

	// Threat is the normalized incoming-projectile pressure in [0, 1]
	Threat float64
}

// CanDodge reports whether the dodge cooldown has elapsed at now
func (e *Enemy) CanDodge(now float64) bool {
	return now-e.LastDodge >= e.DodgeCooldown
}
