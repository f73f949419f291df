package event

// Handler processes specific event types within a context T
// Systems implement this interface to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches queued events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Context T is passed to handlers (typically *engine.World)
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers in FIFO order
// Returns the number of events consumed, including unhandled ones
func (r *Router[T]) DispatchAll(ctx T) int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
