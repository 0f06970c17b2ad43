package entity

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
	"golang.org/x/image/colornames"
)

func SpawnMinion(w *ecs.World, kind string, spec prefabs.MinionSpec, pos cp.Vector) (ecs.Entity, error) {
	e, _, err := spawnBody(w, pos, spec.Radius, true, spec.Color.Or(colornames.Crimson))
	if err != nil {
		return 0, fmt.Errorf("minion %s: %w", kind, err)
	}

	hp := combat.NewCombatant(spec.Health, spec.ContactDamage, spec.Speed, combat.FactionEnemy)
	if err := ecs.Add(w, e, component.CombatantComponent.Kind(), hp); err != nil {
		return 0, fmt.Errorf("minion %s: add combatant: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.MinionComponent.Kind(), &component.Minion{
		Type:            kind,
		ContactDamage:   spec.ContactDamage,
		ContactCooldown: spec.ContactCooldown,
	}); err != nil {
		return 0, fmt.Errorf("minion %s: add minion: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.PursuerComponent.Kind(), &component.Pursuer{Speed: spec.Speed}); err != nil {
		return 0, fmt.Errorf("minion %s: add pursuer: %w", kind, err)
	}
	return e, nil
}

// minionSpawner resolves summon requests against the minion catalog.
type minionSpawner struct {
	w       *ecs.World
	catalog prefabs.MinionCatalog
	owner   ecs.Entity
	log     *slog.Logger
}

func (s minionSpawner) SpawnMinion(req boss.MinionSpawnRequest) {
	spec, ok := s.catalog[req.Type]
	if !ok {
		s.log.Warn("unknown minion type", "type", req.Type)
		return
	}
	e, err := SpawnMinion(s.w, req.Type, spec, req.Position)
	if err != nil {
		s.log.Error("spawn minion", "type", req.Type, "err", err)
		return
	}
	s.w.Events().Push(ecs.Event{Type: ecs.EventMinionSpawned, Entity: s.owner, Data: e})
}
