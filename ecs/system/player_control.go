package system

import (
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
)

// PlayerControlSystem turns Input into player velocity and shots.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, pb *component.PhysicsBody) {
			move := in.Move
			if move.LengthSq() > 1 {
				move = move.Normalize()
			}
			pb.Body.SetVelocityVector(move.Mult(p.MoveSpeed))

			p.ShotCooldown = max(p.ShotCooldown-dt, 0)
			if !in.Fire || p.ShotCooldown > 0 {
				return
			}
			pos := pb.Body.Position()
			dir := in.Aim.Sub(pos)
			if dir.LengthSq() == 0 {
				return
			}
			p.ShotCooldown = p.Shot.Cooldown
			_, _ = entity.SpawnProjectile(w, entity.Shot{
				Position:  pos.Add(dir.Normalize().Mult(pb.Radius)),
				Direction: dir,
				Speed:     p.Shot.Speed,
				Lifetime:  p.Shot.Lifetime,
				Hit: component.Projectile{
					Damage:    p.Shot.Damage,
					Tag:       p.Shot.Tag,
					Faction:   combat.FactionPlayer,
					Radius:    p.Shot.Radius,
					Status:    p.Shot.Status,
					Knockback: p.Shot.Knockback,
				},
			})
		})
}
