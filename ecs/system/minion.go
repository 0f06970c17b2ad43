package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
)

// MinionSystem steers pursuers at the player and applies minion contact
// damage on a per-minion cooldown.
type MinionSystem struct{}

func NewMinionSystem() *MinionSystem {
	return &MinionSystem{}
}

func (s *MinionSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	player, target, hasTarget := entity.Player(w)

	ecs.ForEach2(w, component.PursuerComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, p *component.Pursuer, pb *component.PhysicsBody) {
			if !hasTarget {
				pb.Body.SetVelocityVector(cp.Vector{})
				return
			}
			delta := target.Sub(pb.Body.Position())
			if delta.LengthSq() < 1 {
				pb.Body.SetVelocityVector(cp.Vector{})
				return
			}
			pb.Body.SetVelocityVector(delta.Normalize().Mult(p.Speed))
		})

	ecs.ForEach2(w, component.MinionComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, m *component.Minion, pb *component.PhysicsBody) {
			m.Cooldown = max(m.Cooldown-dt, 0)
			if !hasTarget || m.Cooldown > 0 || m.ContactDamage <= 0 {
				return
			}
			c, ok := ecs.Get(w, player, component.CombatantComponent.Kind())
			if !ok {
				return
			}
			body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
			if !ok || !overlaps(pb.Body.Position(), pb.Radius, body.Body.Position(), body.Radius) {
				return
			}
			if damageCombatant(w, player, c, combat.Hit{Amount: m.ContactDamage, Tag: combat.TagPhysical, Source: m.Type}) > 0 {
				m.Cooldown = m.ContactCooldown
			}
			if !ecs.IsAlive(w, player) {
				hasTarget = false
			}
		})
}
