package system

import (
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// BossSystem drives every encounter, applies charge contact damage and
// removes bosses once they are defeated.
type BossSystem struct{}

func NewBossSystem() *BossSystem {
	return &BossSystem{}
}

func (s *BossSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BossComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, b *component.Boss, pb *component.PhysicsBody) {
			enc := b.Encounter
			enc.Update(dt)

			if enc.State() == boss.Charging {
				s.chargeContact(w, enc, pb)
			}
			if enc.Defeated() {
				b.Unsubscribe()
				ecs.DestroyEntity(w, e)
			}
		})
}

func (s *BossSystem) chargeContact(w *ecs.World, enc *boss.Encounter, pb *component.PhysicsBody) {
	dmg := enc.Config().Charge.ContactDamage
	if dmg <= 0 {
		return
	}
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.CombatantComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, _ *component.Player, c *combat.Combatant, body *component.PhysicsBody) {
			if overlaps(pb.Body.Position(), pb.Radius, body.Body.Position(), body.Radius) {
				damageCombatant(w, e, c, combat.Hit{Amount: dmg, Tag: combat.TagPhysical, Source: enc.Config().ID})
			}
		})
}
