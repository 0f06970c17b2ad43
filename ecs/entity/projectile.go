package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"golang.org/x/image/colornames"
)

// Shot describes one projectile fired by anyone.
type Shot struct {
	Position  cp.Vector
	Direction cp.Vector
	Speed     float64
	Lifetime  float64
	Hit       component.Projectile
}

func SpawnProjectile(w *ecs.World, shot Shot) (ecs.Entity, error) {
	tint := colornames.Gold
	if shot.Hit.Faction == combat.FactionEnemy {
		tint = colornames.Orangered
	}
	e, body, err := spawnBody(w, shot.Position, shot.Hit.Radius, false, tint)
	if err != nil {
		return 0, fmt.Errorf("projectile: %w", err)
	}
	body.SetVelocityVector(shot.Direction.Normalize().Mult(shot.Speed))

	hit := shot.Hit
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &hit); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	if shot.Lifetime > 0 {
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: shot.Lifetime})
	}
	return e, nil
}

// projectileSpawner fires boss projectiles into the world.
type projectileSpawner struct {
	w *ecs.World
}

func (s projectileSpawner) SpawnProjectile(spec boss.ProjectileSpec) {
	_, _ = SpawnProjectile(s.w, Shot{
		Position:  spec.Position,
		Direction: spec.Direction,
		Speed:     spec.Speed,
		Lifetime:  spec.Lifetime,
		Hit: component.Projectile{
			Damage:  spec.Damage,
			Tag:     spec.Tag,
			Faction: combat.FactionEnemy,
			Radius:  spec.Radius,
		},
	})
}
