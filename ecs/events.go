package ecs

// EventType names a world event.
type EventType string

const (
	EventBossSpawned    EventType = "boss_spawned"
	EventBossDefeated   EventType = "boss_defeated"
	EventPhaseChanged   EventType = "phase_changed"
	EventHealthChanged  EventType = "health_changed"
	EventStateChanged   EventType = "state_changed"
	EventMinionSpawned  EventType = "minion_spawned"
	EventPlayerDefeated EventType = "player_defeated"
	// EventScript carries a name emitted by an encounter script.
	EventScript EventType = "script"
)

// Event is a world event payload. Seq is assigned by the queue.
type Event struct {
	Seq    uint64
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue buffers events for readers that keep their own cursor. Events
// survive one full scheduler pass after the one they were pushed in, so every
// system sees each event exactly once regardless of run order.
type EventQueue struct {
	items []Event
	base  uint64
	keep  uint64
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	evt.Seq = q.base + uint64(len(q.items))
	q.items = append(q.items, evt)
}

// Since returns the events at or after cursor and the cursor to pass next time.
func (q *EventQueue) Since(cursor uint64) ([]Event, uint64) {
	if q == nil {
		return nil, cursor
	}
	next := q.base + uint64(len(q.items))
	start := max(cursor, q.base) - q.base
	if start >= uint64(len(q.items)) {
		return nil, next
	}
	return q.items[start:], next
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// advance drops events that were already visible for a whole pass.
func (q *EventQueue) advance() {
	if q == nil {
		return
	}
	drop := int(q.keep - q.base)
	if drop > 0 {
		q.items = append([]Event(nil), q.items[drop:]...)
		q.base = q.keep
	}
	q.keep = q.base + uint64(len(q.items))
}
