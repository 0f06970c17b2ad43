package boss

// ComputePhase maps a health fraction onto a phase index. The deepest
// satisfied threshold wins: pct <= thresholds[i] means phase i+2. The result
// only moves forward from current and never exceeds maxPhases.
func ComputePhase(pct float64, thresholds []float64, current, maxPhases int) int {
	if maxPhases < 1 {
		maxPhases = 1
	}
	current = min(max(current, 1), maxPhases)

	target := 1
	for i, th := range thresholds {
		if pct <= th {
			target = i + 2
		}
	}
	if target > current && target <= maxPhases {
		return target
	}
	return current
}

func (e *Encounter) updatePhase() {
	next := ComputePhase(e.combatant.Percentage(), e.cfg.PhaseThresholds, e.phase, e.maxPhases)
	if next == e.phase {
		return
	}
	prev := e.phase
	e.phase = next
	e.log.Info("boss: phase changed", "from", prev, "to", next, "health_pct", e.combatant.Percentage())
	e.events.phaseChanged.emit(func(fn func(int)) { fn(next) })
}
