package vidar

import "sync"

// Event is a notification published through an EventBus.
type Event struct {
	// Type names the event, for example "layer.attach".
	Type string
	// Target is the entity the event concerns, if any.
	Target any
	// Data carries event-specific payload.
	Data map[string]any
}

// Handler receives published events.
type Handler func(Event)

// EventBus is a decoupled fan-out registry. Handlers run synchronously
// in registration order. Publishing a type nobody subscribed to is a
// no-op.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for the given event type.
func (b *EventBus) Subscribe(eventType string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
	b.mu.Unlock()
}

// Publish invokes all handlers registered for the event's type, in
// registration order, and returns the event unchanged.
func (b *EventBus) Publish(event Event) Event {
	b.mu.RLock()
	hs := b.handlers[event.Type]
	b.mu.RUnlock()
	for _, h := range hs {
		h(event)
	}
	return event
}

// defaultBus backs the package-level Subscribe and Publish.
var defaultBus = NewEventBus()

// Subscribe registers a handler on the package-level bus.
func Subscribe(eventType string, h Handler) {
	defaultBus.Subscribe(eventType, h)
}

// Publish publishes an event on the package-level bus. Intended for
// implementors of entities; consumers normally only subscribe.
func Publish(event Event) Event {
	return defaultBus.Publish(event)
}
