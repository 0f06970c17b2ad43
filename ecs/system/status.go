package system

import (
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// StatusSystem expires timed status effects and invulnerability windows.
type StatusSystem struct{}

func NewStatusSystem() *StatusSystem {
	return &StatusSystem{}
}

func (s *StatusSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.StatusComponent.Kind(), func(_ ecs.Entity, st *combat.StatusEffects) {
		st.Tick(dt)
	})
	ecs.ForEach(w, component.CombatantComponent.Kind(), func(_ ecs.Entity, c *combat.Combatant) {
		c.Tick(dt)
	})
}
