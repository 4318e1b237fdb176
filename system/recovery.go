package system

import (
	"log"

	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
)

// RecoverySystem respawns a player that fell through the level
type RecoverySystem struct {
	world *engine.World
}

func NewRecoverySystem(world *engine.World) engine.System {
	return &RecoverySystem{world: world}
}

func (s *RecoverySystem) Init() {}

func (s *RecoverySystem) Name() string { return "recovery" }

func (s *RecoverySystem) Priority() int { return parameter.PriorityRecovery }

func (s *RecoverySystem) Update(float64) {
	s.RecoverIfOutOfBounds()
}

// RecoverIfOutOfBounds resets the capsule to spawn at rest when the view drops to the floor threshold
// Reports whether a reset happened
func (s *RecoverySystem) RecoverIfOutOfBounds() bool {
	w := s.world
	if w.Player.ViewPosition().Y > w.Config.Player.OutOfBoundsY {
		return false
	}
	log.Printf("player out of bounds at %+v, respawning", w.Player.ViewPosition())
	w.SpawnPlayer()
	return true
}
