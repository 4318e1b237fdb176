package input

// Look is a 2D pointer or touch delta in pixels
type Look struct {
	DX, DY float64
}

// Snapshot is the immutable control state for one substep
type Snapshot struct {
	Forward, Back, Left, Right bool
	Jump                       bool

	// Trigger is true while the throw trigger is held; TriggerHeld is how long, seconds
	Trigger     bool
	TriggerHeld float64

	// Pointer and touch look deltas accumulated since the previous sample
	Pointer Look
	Touch   Look
}

// Source produces one Snapshot per substep; dt is the substep length in seconds
type Source interface {
	Sample(dt float64) Snapshot
}

// Idle is a Source that never presses anything
type Idle struct{}

func (Idle) Sample(float64) Snapshot { return Snapshot{} }
