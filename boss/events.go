package boss

// Subscription removes a handler registered on Events.
type Subscription struct {
	cancel func()
}

// Unsubscribe detaches the handler. Calling it more than once is a no-op.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type handlerEntry[F any] struct {
	id int
	fn F
}

type handlerList[F any] struct {
	nextID  int
	entries []handlerEntry[F]
}

func (l *handlerList[F]) add(fn F) Subscription {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[F]{id: id, fn: fn})
	return Subscription{cancel: func() { l.remove(id) }}
}

func (l *handlerList[F]) remove(id int) {
	for i, entry := range l.entries {
		if entry.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// emit calls every handler registered at the time of the call, so handlers
// may unsubscribe themselves.
func (l *handlerList[F]) emit(call func(F)) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := append([]handlerEntry[F](nil), l.entries...)
	for _, entry := range snapshot {
		call(entry.fn)
	}
}

func (l *handlerList[F]) len() int {
	return len(l.entries)
}

// Events is the encounter's notification registry. Handlers run inline on
// the tick that produced the event.
type Events struct {
	spawned       handlerList[func()]
	defeated      handlerList[func(*Encounter)]
	phaseChanged  handlerList[func(int)]
	healthChanged handlerList[func(float64)]
	stateChanged  handlerList[func(from, to State)]
}

func (ev *Events) OnSpawned(fn func()) Subscription {
	return ev.spawned.add(fn)
}

func (ev *Events) OnDefeated(fn func(*Encounter)) Subscription {
	return ev.defeated.add(fn)
}

func (ev *Events) OnPhaseChanged(fn func(phase int)) Subscription {
	return ev.phaseChanged.add(fn)
}

// OnHealthPercentageChanged fires only when the health fraction actually
// changes.
func (ev *Events) OnHealthPercentageChanged(fn func(pct float64)) Subscription {
	return ev.healthChanged.add(fn)
}

// OnStateChanged fires on every transition, including the immediate ones made
// from on-enter hooks.
func (ev *Events) OnStateChanged(fn func(from, to State)) Subscription {
	return ev.stateChanged.add(fn)
}

// Subscribers returns the total number of registered handlers.
func (ev *Events) Subscribers() int {
	return ev.spawned.len() + ev.defeated.len() + ev.phaseChanged.len() + ev.healthChanged.len() + ev.stateChanged.len()
}
