package component

import "github.com/milk9111/bossfight/combat"

type Projectile struct {
	Damage  float64
	Tag     combat.Tag
	Faction combat.Faction
	Radius  float64
	Status  *combat.StatusEffect
	// Knockback pushes a boss this far along the shot unless it has super armor.
	Knockback float64
}

var ProjectileComponent = NewComponent[Projectile]()
