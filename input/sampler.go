package input

import (
	"sync"
)

// keyLookRate converts a held look key into pointer pixels per second
const keyLookRate = 900.0

// Sampler accumulates host input events and produces per-substep snapshots
//
// Hosts call Press/Release/Tap/AddPointer from their event goroutine;
// the simulation calls Sample once per substep. Terminals report no key-up,
// so Tap holds an action for a fixed span of simulated time instead.
type Sampler struct {
	mu sync.Mutex

	held    [actionCount]bool
	holdFor [actionCount]float64 // Remaining tap hold, seconds; 0 = not tapped

	pointer Look
	touch   Look

	triggerHeld float64
}

func NewSampler() *Sampler {
	return &Sampler{}
}

// Press holds the action until Release
func (s *Sampler) Press(a Action) {
	if a == ActionNone || a.IsCommand() {
		return
	}
	s.mu.Lock()
	s.held[a] = true
	s.mu.Unlock()
}

// Release ends both a Press and any pending Tap
func (s *Sampler) Release(a Action) {
	if a >= actionCount {
		return
	}
	s.mu.Lock()
	s.held[a] = false
	s.holdFor[a] = 0
	s.mu.Unlock()
}

// Tap holds the action for seconds of simulated time, extending any pending tap
func (s *Sampler) Tap(a Action, seconds float64) {
	if a == ActionNone || a.IsCommand() || seconds <= 0 {
		return
	}
	s.mu.Lock()
	if seconds > s.holdFor[a] {
		s.holdFor[a] = seconds
	}
	s.mu.Unlock()
}

// AddPointer accumulates mouse-look movement in pixels
func (s *Sampler) AddPointer(dx, dy float64) {
	s.mu.Lock()
	s.pointer.DX += dx
	s.pointer.DY += dy
	s.mu.Unlock()
}

// AddTouch accumulates touch-drag movement in pixels
func (s *Sampler) AddTouch(dx, dy float64) {
	s.mu.Lock()
	s.touch.DX += dx
	s.touch.DY += dy
	s.mu.Unlock()
}

// Clear drops all held state and pending deltas
func (s *Sampler) Clear() {
	s.mu.Lock()
	s.held = [actionCount]bool{}
	s.holdFor = [actionCount]float64{}
	s.pointer = Look{}
	s.touch = Look{}
	s.triggerHeld = 0
	s.mu.Unlock()
}

// Sample returns the state for a substep of dt seconds
// Look deltas are consumed; tap holds count down by dt after being observed
func (s *Sampler) Sample(dt float64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := func(a Action) bool {
		return s.held[a] || s.holdFor[a] > 0
	}

	snap := Snapshot{
		Forward: active(ActionForward),
		Back:    active(ActionBack),
		Left:    active(ActionLeft),
		Right:   active(ActionRight),
		Jump:    active(ActionJump),
		Trigger: active(ActionTrigger),
		Pointer: s.pointer,
		Touch:   s.touch,
	}

	// Keyboard look feeds the pointer channel
	if active(ActionLookLeft) {
		snap.Pointer.DX -= keyLookRate * dt
	}
	if active(ActionLookRight) {
		snap.Pointer.DX += keyLookRate * dt
	}
	if active(ActionLookUp) {
		snap.Pointer.DY -= keyLookRate * dt
	}
	if active(ActionLookDown) {
		snap.Pointer.DY += keyLookRate * dt
	}

	if snap.Trigger {
		s.triggerHeld += dt
	} else {
		s.triggerHeld = 0
	}
	snap.TriggerHeld = s.triggerHeld

	s.pointer = Look{}
	s.touch = Look{}
	for i := range s.holdFor {
		if s.holdFor[i] > 0 {
			s.holdFor[i] -= dt
			if s.holdFor[i] < 0 {
				s.holdFor[i] = 0
			}
		}
	}

	return snap
}
