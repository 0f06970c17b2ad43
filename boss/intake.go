package boss

import "github.com/milk9111/bossfight/combat"

// IsCCImmuneTag reports whether the crowd-control immunity flag zeroes damage
// from tag.
func IsCCImmuneTag(tag combat.Tag) bool {
	return tag == combat.TagIce || tag == combat.TagLightning
}

// ResistanceFor returns the fractional damage reduction for tag.
func (r ResistanceConfig) ResistanceFor(tag combat.Tag) float64 {
	if r.CCImmune && IsCCImmuneTag(tag) {
		return 1
	}
	return min(max(r.Scalar, 0), 1)
}

// TakeDamage applies hit to the boss. Hits on a defeated boss are ignored.
func (e *Encounter) TakeDamage(hit combat.Hit) combat.DamageResult {
	if e == nil || e.dead || e.tornDown {
		return combat.DamageResult{}
	}

	multiplier := 1.0
	if e.deps.Status != nil {
		multiplier = e.deps.Status.DamageMultiplier(hit.Tag)
		if hit.Status != nil {
			e.deps.Status.ApplyStatus(*hit.Status)
		}
	}

	amount := hit.Amount * multiplier * (1 - e.cfg.Resistance.ResistanceFor(hit.Tag))
	applied := e.combatant.ApplyDamage(amount)
	e.notifyHealth()

	res := combat.DamageResult{
		Applied:   applied,
		Knockback: !e.cfg.Resistance.SuperArmor,
	}
	if !e.combatant.Alive() {
		e.die()
		res.Killed = true
	}
	return res
}

func (e *Encounter) notifyHealth() {
	pct := e.combatant.Percentage()
	if pct == e.lastPct {
		return
	}
	e.lastPct = pct
	e.events.healthChanged.emit(func(fn func(float64)) { fn(pct) })
}
