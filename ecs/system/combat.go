package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

func overlaps(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LengthSq() <= r*r
}

// damageCombatant applies hit to a non-boss entity, forwarding any status
// effect, and handles death. It returns the damage applied.
func damageCombatant(w *ecs.World, e ecs.Entity, c *combat.Combatant, hit combat.Hit) float64 {
	amount := hit.Amount
	if st, ok := ecs.Get(w, e, component.StatusComponent.Kind()); ok {
		amount *= st.DamageMultiplier(hit.Tag)
		if hit.Status != nil {
			st.ApplyStatus(*hit.Status)
		}
	}
	applied := c.ApplyDamage(amount)
	if applied <= 0 {
		return 0
	}

	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		c.StartInvulnerability(p.IFrames)
	}
	if !c.Alive() {
		if ecs.Has(w, e, component.PlayerComponent.Kind()) {
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerDefeated, Entity: e})
		}
		ecs.DestroyEntity(w, e)
	}
	return applied
}
