package engine

import (
	"math"

	"github.com/DJG-inc/DodgeBallThreeJS/config"
)

// Difficulty is the enemy tuning in effect for a span of play time
// Level doubles as the version: equal levels imply equal values
type Difficulty struct {
	Level         int
	SpawnInterval float64
	DodgeCooldown float64
	DodgeSpeed    float64
	MoveSpeed     float64
}

// ComputeDifficulty derives tuning from elapsed play seconds
// Monotonic in elapsed; decreasing quantities stop at their floors, increasing ones at their caps
func ComputeDifficulty(cfg config.DifficultyConfig, elapsed float64) Difficulty {
	level := 0
	if elapsed > 0 && cfg.Step > 0 {
		level = int(math.Floor(elapsed / cfg.Step))
	}
	l := float64(level)
	return Difficulty{
		Level:         level,
		SpawnInterval: math.Max(cfg.SpawnIntervalMin, cfg.SpawnIntervalInitial-l*cfg.SpawnIntervalStep),
		DodgeCooldown: math.Max(cfg.DodgeCooldownMin, cfg.DodgeCooldownInitial-l*cfg.DodgeCooldownStep),
		DodgeSpeed:    math.Min(cfg.DodgeSpeedMax, cfg.DodgeSpeedInitial+l*cfg.DodgeSpeedStep),
		MoveSpeed:     math.Min(cfg.MoveSpeedMax, cfg.MoveSpeedInitial+l*cfg.MoveSpeedStep),
	}
}
