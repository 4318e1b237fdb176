package engine

import (
	"math"
	"sync/atomic"

	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/status"
)

// Integrator drives the world once per rendered frame
// The wall-clock delta is clamped, split into fixed substeps, and the pipeline runs that many times
// While Paused or GameOver the pipeline is skipped but a snapshot is still published
type Integrator struct {
	world  *World
	source input.Source

	substeps int
	maxDelta float64

	// Real seconds accrued toward the next 1 Hz session tick
	tickAccum float64

	latest atomic.Pointer[Snapshot]

	statFrames   *atomic.Int64
	statSubsteps *atomic.Int64
	statFrameDT  *status.AtomicFloat
}

func NewIntegrator(w *World, src input.Source) *Integrator {
	if src == nil {
		src = input.Idle{}
	}
	substeps := w.Config.Engine.Substeps
	if substeps < 1 {
		substeps = 1
	}
	it := &Integrator{
		world:        w,
		source:       src,
		substeps:     substeps,
		maxDelta:     w.Config.Engine.MaxFrameDelta,
		statFrames:   w.Status.Ints.Get(status.KeyFrames),
		statSubsteps: w.Status.Ints.Get(status.KeySubsteps),
		statFrameDT:  w.Status.Floats.Get(status.KeyFrameDelta),
	}
	it.latest.Store(w.Snapshot())
	return it
}

// SubstepDelta returns the per-substep dt for a wall-clock delta in seconds
func (it *Integrator) SubstepDelta(wall float64) float64 {
	if wall <= 0 || math.IsNaN(wall) {
		return 0
	}
	if wall > it.maxDelta {
		wall = it.maxDelta
	}
	return wall / float64(it.substeps)
}

// Step advances one rendered frame by wall seconds and returns the published snapshot
func (it *Integrator) Step(wall float64) *Snapshot {
	w := it.world
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	if wall < 0 || math.IsNaN(wall) || math.IsInf(wall, 0) {
		wall = 0
	}

	w.Frame++
	it.statFrames.Add(1)

	dt := it.SubstepDelta(wall)
	it.statFrameDT.Set(dt * float64(it.substeps))

	if w.Session.Playing() {
		for i := 0; i < it.substeps; i++ {
			w.RunSubstep(dt, it.source.Sample(dt))
		}
		it.statSubsteps.Add(int64(it.substeps))

		it.tickAccum += wall
		for it.tickAccum >= 1 && w.Session.Playing() {
			it.tickAccum--
			w.Tick1Hz()
		}
	} else {
		// Frozen: drop look deltas and held durations accumulated meanwhile
		it.source.Sample(0)
	}

	snap := w.Snapshot()
	it.latest.Store(snap)
	return snap
}

// ResetTick discards partial seconds toward the next countdown tick
func (it *Integrator) ResetTick() {
	it.tickAccum = 0
}

// Latest returns the most recent snapshot; safe from any goroutine
func (it *Integrator) Latest() *Snapshot {
	return it.latest.Load()
}
