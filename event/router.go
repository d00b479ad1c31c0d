package event

import "sync"

// Handler processes specific event types
type Handler interface {
	// HandleEvent processes a single event
	// Called on the publishing goroutine after the world lock is released
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for the given types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

func (h HandlerFunc) EventTypes() []EventType { return h.Types }

type registration struct {
	id      uint64
	handler Handler
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Subscriptions may change from any goroutine, including inside a handler
//   - Publish copies the handler list under a read lock, then invokes without it
//   - Handlers run in registration order
type Router struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[EventType][]registration
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]registration),
	}
}

// Register adds a handler for its declared event types and returns its removal func
func (r *Router) Register(handler Handler) (unregister func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	types := handler.EventTypes()
	for _, t := range types {
		r.handlers[t] = append(r.handlers[t], registration{id: id, handler: handler})
	}
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id, types) })
	}
}

func (r *Router) remove(id uint64, types []EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range types {
		list := r.handlers[t]
		out := list[:0:0]
		for _, reg := range list {
			if reg.id != id {
				out = append(out, reg)
			}
		}
		r.handlers[t] = out
	}
}

// Publish delivers ev to a snapshot of the handlers registered for its type
func (r *Router) Publish(ev GameEvent) {
	r.mu.RLock()
	list := r.handlers[ev.Type]
	snapshot := make([]Handler, len(list))
	for i, reg := range list {
		snapshot[i] = reg.handler
	}
	r.mu.RUnlock()

	for _, h := range snapshot {
		h.HandleEvent(ev)
	}
}

// PublishAll delivers events in order
func (r *Router) PublishAll(events []GameEvent) {
	for _, ev := range events {
		r.Publish(ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t])
}
