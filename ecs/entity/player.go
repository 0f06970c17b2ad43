package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
	"golang.org/x/image/colornames"
)

func SpawnPlayer(w *ecs.World, spec prefabs.PlayerSpec, pos cp.Vector) (ecs.Entity, error) {
	e, _, err := spawnBody(w, pos, spec.Radius, true, spec.Color.Or(colornames.Skyblue))
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	hp := combat.NewCombatant(spec.Health, spec.Shot.Damage, spec.MoveSpeed, combat.FactionPlayer)
	if err := ecs.Add(w, e, component.CombatantComponent.Kind(), hp); err != nil {
		return 0, fmt.Errorf("player: add combatant: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed: spec.MoveSpeed,
		IFrames:   spec.IFrames,
		Shot:      spec.Shot,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return e, nil
}

// LoadPlayer spawns the player described by a prefab file.
func LoadPlayer(w *ecs.World, filename string, pos cp.Vector) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.PlayerSpec](filename)
	if err != nil {
		return 0, err
	}
	return SpawnPlayer(w, spec, pos)
}
