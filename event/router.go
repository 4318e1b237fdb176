package event

// Handler processes routed events within a context T
// Systems implement this to receive core commands
type Handler[T any] interface {
	// HandleEvent is called synchronously from Dispatch
	HandleEvent(ctx T, ev GameEvent)

	// EventTypes lists the types to register for
	EventTypes() []EventType
}

// Router delivers core commands to their owning systems immediately
// Single-threaded; handlers for one type run in registration order
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
}

func NewRouter[T any]() *Router[T] {
	return &Router[T]{handlers: make(map[EventType][]Handler[T])}
}

// Register adds handler for each of its declared types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch runs every handler for ev.Type before returning
func (r *Router[T]) Dispatch(ctx T, ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
}

func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
