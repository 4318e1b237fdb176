package status

import "sync/atomic"

// Metric keys published by the simulation
const (
	KeyFrames          = "engine.frames"
	KeySubsteps        = "engine.substeps"
	KeyFrameDelta      = "engine.frame_dt"
	KeyProjectilesLive = "projectile.live"
	KeyProjectileThrow = "projectile.thrown"
	KeyEnemiesLive     = "enemy.live"
	KeyEnemyDodges     = "enemy.dodges"
	KeyDifficulty      = "session.difficulty"
	KeyOracleReady     = "physics.oracle_ready"
)

// Registry is the metrics facade shared by systems and hosts
// Systems cache pointers during Init; Update writes directly to atomics
// Hosts read concurrently from their own goroutines
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// ResetCounters zeroes every integer and float metric, keeping registrations and cached pointers
func (r *Registry) ResetCounters() {
	r.Ints.Range(func(_ string, v *atomic.Int64) { v.Store(0) })
	r.Floats.Range(func(_ string, v *AtomicFloat) { v.Set(0) })
}
