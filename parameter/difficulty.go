package parameter

// Difficulty Scaling (recomputed from elapsed play time)
const (
	// DifficultyStep is the play time per difficulty level, seconds
	DifficultyStep = 15.0

	SpawnIntervalInitial = 5.0
	SpawnIntervalMin     = 1.5
	SpawnIntervalStep    = 0.5

	DodgeCooldownInitial = 1.5
	DodgeCooldownMin     = 0.5
	DodgeCooldownStep    = 0.15

	DodgeSpeedInitial = 8.0
	DodgeSpeedMax     = 16.0
	DodgeSpeedStep    = 1.0

	EnemySpeedInitial = 3.0
	EnemySpeedMax     = 7.0
	EnemySpeedStep    = 0.5
)
