package combat

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

// CanHit reports whether an attack owned by attacker may damage target.
func CanHit(attacker, target Faction) bool {
	if attacker == FactionNeutral || target == FactionNeutral {
		return true
	}
	return attacker != target
}

// Tag classifies incoming damage for multipliers and resistances.
type Tag string

const (
	TagPhysical  Tag = "physical"
	TagFire      Tag = "fire"
	TagIce       Tag = "ice"
	TagLightning Tag = "lightning"
	TagPoison    Tag = "poison"
)

// Hit describes one damage application.
type Hit struct {
	Amount float64
	Tag    Tag
	Source string
	// Status is forwarded to the target's status receiver when set.
	Status *StatusEffect
}

// DamageResult reports what an intake did with a Hit.
type DamageResult struct {
	Applied   float64
	Knockback bool
	Killed    bool
}
