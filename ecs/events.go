package ecs

// EventType names what happened during a tick.
type EventType string

const (
	EventModeChanged     EventType = "mode_changed"
	EventClipChanged     EventType = "clip_changed"
	EventPointerLock     EventType = "pointer_lock"
	EventTuningReloaded  EventType = "tuning_reloaded"
	EventEnterRejected   EventType = "enter_rejected"
	EventRolesUnresolved EventType = "roles_unresolved"
)

// Event is a tick-scoped ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
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

// Len is the number of queued events.
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
