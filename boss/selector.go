package boss

// SelectPattern picks a pattern from weights using sample, which should be
// drawn uniformly from [0, weights.Total()). Weights are walked in the order
// charge, projectile, summon. Negative weights count as zero; a non-positive
// total or an out-of-range sample selects charge.
func SelectPattern(weights PatternWeights, sample int) Pattern {
	if weights.Total() <= 0 || sample < 0 {
		return PatternCharge
	}
	cumulative := 0
	for _, entry := range []struct {
		pattern Pattern
		weight  int
	}{
		{PatternCharge, weights.Charge},
		{PatternProjectile, weights.Projectile},
		{PatternSummon, weights.Summon},
	} {
		cumulative += max(entry.weight, 0)
		if sample < cumulative {
			return entry.pattern
		}
	}
	return PatternCharge
}

func (e *Encounter) tickIdle(dt float64) {
	e.pursue(dt)

	target, ok := e.target()
	if !ok || e.stateTimer < DwellTime {
		return
	}
	if target.Distance(e.position()) > e.cfg.DetectionRange {
		return
	}

	sample := 0
	if total := e.weights.Total(); total > 0 {
		sample = e.rng.IntN(total)
	}
	pattern := SelectPattern(e.weights, sample)
	e.log.Debug("boss: pattern selected", "pattern", pattern.String(), "sample", sample)
	e.ChangeState(pattern.PrepareState())
}

// StartPatternCooldown draws a rest interval from the configured range and
// enters PatternCooldown.
func (e *Encounter) StartPatternCooldown() {
	lo, hi := e.cfg.Cooldown.Min, e.cfg.Cooldown.Max
	if hi < lo {
		hi = lo
	}
	e.cooldownRemaining = lo + e.rng.Float64()*(hi-lo)
	e.ChangeState(PatternCooldown)
}

func (e *Encounter) tickCooldown(dt float64) {
	e.pursue(dt)
	e.cooldownRemaining -= dt
	if e.cooldownRemaining <= 0 {
		e.cooldownRemaining = 0
		e.ChangeState(Idle)
	}
}
