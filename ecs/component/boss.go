package component

import "github.com/milk9111/bossfight/boss"

// Boss attaches a running encounter to an entity. Subs are released when the
// entity is torn down.
type Boss struct {
	Encounter *boss.Encounter
	Spec      string
	Subs      []boss.Subscription
}

func (b *Boss) Unsubscribe() {
	if b == nil {
		return
	}
	for _, s := range b.Subs {
		s.Unsubscribe()
	}
	b.Subs = nil
}

var BossComponent = NewComponent[Boss]()
