package engine

// System is one stage of the substep pipeline
// Systems that also implement event.Handler[*World] are registered with the Router by AddSystem
type System interface {
	Name() string

	// Priority orders the pipeline, lower first
	Priority() int

	// Init clears per-session state; called on AddSystem and on every reset
	Init()

	// Update advances the system by one substep of dt seconds
	Update(dt float64)
}
