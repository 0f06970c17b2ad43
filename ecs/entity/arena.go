package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
)

// SpawnArena attaches a physics world sized to the arena and creates the
// arena's region nodes. It returns the summon node, or 0 when the arena
// leaves summons to the boss's radius.
func SpawnArena(w *ecs.World, spec prefabs.ArenaSpec) (ecs.Entity, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("arena %s: invalid size %vx%v", spec.Name, spec.Width, spec.Height)
	}
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(spec.Bounds()))

	if spec.SummonArea.Empty() {
		return 0, nil
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ArenaNodeComponent.Kind(), &component.ArenaNode{
		Group:  component.ArenaGroupSummon,
		Bounds: spec.SummonArea.BB(),
		Active: true,
	}); err != nil {
		return 0, fmt.Errorf("arena %s: add summon node: %w", spec.Name, err)
	}
	return e, nil
}

// summonArea finds the active summon node at call time, so toggling the
// node changes where later summons land.
type summonArea struct {
	w *ecs.World
}

func (a summonArea) RandomPoint(r boss.Rand) cp.Vector {
	var area boss.SpawnArea
	ecs.ForEach(a.w, component.ArenaNodeComponent.Kind(), func(_ ecs.Entity, n *component.ArenaNode) {
		if area == nil && n.Active && n.Group == component.ArenaGroupSummon {
			area = boss.RectArea{BB: n.Bounds}
		}
	})
	if area == nil {
		area = boss.RectArea{BB: a.w.PhysicsWorld().Bounds()}
	}
	return area.RandomPoint(r)
}
