package engine

import (
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/config"
	"github.com/DJG-inc/DodgeBallThreeJS/core"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/status"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// World is the simulation state and its ordered systems
//
// Ownership: each collection is mutated only by its owning system during its pipeline
// phase (Player by PlayerSystem/RecoverySystem, Projectiles by ProjectileSystem,
// Enemies by EnemySystem, Session counters through Session methods). Cross-owner
// changes go through Router commands.
type World struct {
	Config *config.Config
	Oracle physics.Oracle

	Player      component.PlayerState
	View        component.View
	Projectiles *Store[component.Projectile]
	Enemies     *Store[component.Enemy]
	Session     *Session

	Rand   *vmath.FastRand
	Events *event.Queue               // Outbound, drained by the host once per frame
	Router *event.Router[*World]      // Synchronous core commands
	Status *status.Registry

	// Input is the snapshot for the substep being run
	Input input.Snapshot

	// Time is simulated play seconds since reset; Frame counts rendered frames
	Time  float64
	Frame int64

	RunID string

	nextID  core.Entity
	systems []System

	updateMutex sync.Mutex
}

// NewWorld builds a world at its spawn state; a nil oracle is treated as an empty level
func NewWorld(cfg *config.Config, oracle physics.Oracle) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	if oracle == nil {
		oracle = physics.EmptyWorld{}
	}
	w := &World{
		Config:      cfg,
		Oracle:      oracle,
		Projectiles: NewStore[component.Projectile](),
		Enemies:     NewStore[component.Enemy](),
		Session:     NewSession(cfg.Session, cfg.Difficulty),
		Rand:        vmath.NewFastRand(uint64(cfg.Engine.Seed)),
		Events:      event.NewQueue(),
		Router:      event.NewRouter[*World](),
		Status:      status.NewRegistry(),
		RunID:       uuid.NewString(),
		nextID:      1,
	}
	w.SpawnPlayer()
	return w
}

// CreateEntity reserves a new identity; identities are never reused within a process
func (w *World) CreateEntity() core.Entity {
	id := w.nextID
	w.nextID++
	return id
}

// AddSystem inserts s in priority order, initializes it, and registers its event handlers
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	s.Init()
	if h, ok := s.(event.Handler[*World]); ok {
		w.Router.Register(h)
	}
}

func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// RunSafe runs fn under the update lock; hosts use it for commands from other goroutines
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// RunSubstep executes the pipeline once with a fixed dt
func (w *World) RunSubstep(dt float64, in input.Snapshot) {
	w.Input = in
	for _, s := range w.systems {
		s.Update(dt)
	}
	w.Time += dt
	w.Session.Advance(dt)
	w.Status.Ints.Get(status.KeyDifficulty).Store(int64(w.Session.Difficulty.Level))
}

// Emit queues an outbound event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: w.Frame})
}

// Dispatch delivers a core command to its owning system before returning
func (w *World) Dispatch(t event.EventType, payload any) {
	w.Router.Dispatch(w, event.GameEvent{Type: t, Payload: payload, Frame: w.Frame})
}

// SpawnPlayer places the player at the spawn capsule with zero velocity
func (w *World) SpawnPlayer() {
	p := w.Config.Player
	w.Player.Spawn(vmath.Vec3{Y: p.SpawnStartY}, vmath.Vec3{Y: p.SpawnEndY}, p.Radius)
}

// PlayerTarget is the point homing and enemy aim track: the capsule center
func (w *World) PlayerTarget() vmath.Vec3 {
	return w.Player.Collider.Center()
}

// ResolveTarget looks up a homing target position; false when the target is gone or none
func (w *World) ResolveTarget(t component.Target) (vmath.Vec3, bool) {
	switch t.Kind {
	case component.TargetPlayer:
		return w.PlayerTarget(), true
	case component.TargetEnemy:
		if e, ok := w.Enemies.Get(t.ID); ok {
			return e.Pos, true
		}
	}
	return vmath.Vec3{}, false
}

// Tick1Hz forwards the real-time second tick to the session
func (w *World) Tick1Hz() {
	if w.Session.Tick1Hz() {
		log.Printf("session %s: game over, score %d", w.RunID, w.Session.Score)
		w.Emit(event.EventGameOver, &event.GameOverPayload{Score: w.Session.Score})
	}
}

// TogglePause flips Playing and Paused; GameOver is unaffected
func (w *World) TogglePause() {
	changed := w.Session.Pause()
	if !changed {
		changed = w.Session.Resume()
	}
	if changed {
		w.Emit(event.EventPauseChanged, &event.PauseChangedPayload{Paused: w.Session.Paused()})
	}
}

// Resume leaves Paused; no effect otherwise
func (w *World) Resume() {
	if w.Session.Resume() {
		w.Emit(event.EventPauseChanged, &event.PauseChangedPayload{Paused: false})
	}
}

// Reset restarts the session: counters, player pose, view, and every system-owned collection
func (w *World) Reset() {
	w.Session.Reset()
	w.SpawnPlayer()
	w.View = component.View{}
	w.Input = input.Snapshot{}
	w.Time = 0
	w.RunID = uuid.NewString()
	w.Status.ResetCounters()

	w.Dispatch(event.EventGameReset, nil)
	for _, s := range w.systems {
		s.Init()
	}

	log.Printf("session %s: reset", w.RunID)
	w.Emit(event.EventSessionReset, &event.SessionResetPayload{RunID: w.RunID})
}
