package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// DrainEventKind identifies drain ability events.
type DrainEventKind string

const (
	DrainEventStarted  DrainEventKind = "drain_started"
	DrainEventEnded    DrainEventKind = "drain_ended"
	DrainEventLinked   DrainEventKind = "drain_linked"
	DrainEventReleased DrainEventKind = "drain_released"
)

// DrainEvent is emitted by the drain system when the ability changes state
// or a link is created or released.
type DrainEvent struct {
	Entity Entity
	Kind   DrainEventKind
	// Target is set for link events.
	Target Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
