package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// offscreenMargin is how far past the arena a projectile may travel before
// it is culled.
const offscreenMargin = 32

// ProjectileSystem resolves projectile hits against bosses, minions and the
// player. A projectile hits at most one target.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, pr *component.Projectile, pb *component.PhysicsBody) {
			pos := pb.Body.Position()
			if !pw.Contains(pos, offscreenMargin) {
				ecs.DestroyEntity(w, e)
				return
			}
			hit := combat.Hit{Amount: pr.Damage, Tag: pr.Tag, Source: "projectile", Status: pr.Status}
			if s.hitBoss(w, pr, pos, pb.Body.Velocity(), pb.Radius, hit) || s.hitCombatant(w, pr, pos, pb.Radius, hit) {
				ecs.DestroyEntity(w, e)
			}
		})
}

func (s *ProjectileSystem) hitBoss(w *ecs.World, pr *component.Projectile, pos, vel cp.Vector, r float64, hit combat.Hit) bool {
	if !combat.CanHit(pr.Faction, combat.FactionEnemy) {
		return false
	}
	landed := false
	ecs.ForEach2(w, component.BossComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, b *component.Boss, body *component.PhysicsBody) {
			if landed || b.Encounter.Defeated() || !overlaps(pos, r, body.Body.Position(), body.Radius) {
				return
			}
			res := b.Encounter.TakeDamage(hit)
			if res.Knockback && pr.Knockback > 0 && vel.LengthSq() > 0 {
				to := body.Body.Position().Add(vel.Normalize().Mult(pr.Knockback))
				body.Body.SetPosition(w.PhysicsWorld().Clamp(to, body.Radius))
			}
			landed = true
		})
	return landed
}

func (s *ProjectileSystem) hitCombatant(w *ecs.World, pr *component.Projectile, pos cp.Vector, r float64, hit combat.Hit) bool {
	landed := false
	ecs.ForEach2(w, component.CombatantComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, c *combat.Combatant, body *component.PhysicsBody) {
			if landed || !c.Alive() || !combat.CanHit(pr.Faction, c.Faction) {
				return
			}
			if !overlaps(pos, r, body.Body.Position(), body.Radius) {
				return
			}
			damageCombatant(w, e, c, hit)
			landed = true
		})
	return landed
}
