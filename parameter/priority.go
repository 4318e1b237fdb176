package parameter

// System Execution Priorities (lower runs first)
// Order is the substep pipeline: player controls and collision, projectiles, enemies, recovery, charge
const (
	PriorityPlayer     = 20
	PriorityProjectile = 30
	PriorityEnemy      = 40
	PrioritySpawn      = 45 // After enemy AI so a fresh spawn is not stepped twice
	PriorityRecovery   = 50
	PriorityCharge     = 60
)
