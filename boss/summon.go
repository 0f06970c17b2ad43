package boss

import "github.com/jakecoffman/cp"

// summonExecutor runs SummonPrepare -> Summoning -> SummonComplete.
type summonExecutor struct {
	castTimer float64
	spawned   int
}

func (s *summonExecutor) install(e *Encounter, table *[stateCount]stateHandler) {
	table[SummonPrepare] = stateHandler{
		enter: func(State) {
			s.reset()
			e.ChangeState(Summoning)
		},
	}
	table[Summoning] = stateHandler{
		tick: func(dt float64) { s.tickSummoning(e, dt) },
	}
	table[SummonComplete] = stateHandler{
		enter: func(State) { e.StartPatternCooldown() },
	}
}

func (s *summonExecutor) reset() {
	*s = summonExecutor{}
}

func (s *summonExecutor) tickSummoning(e *Encounter, dt float64) {
	s.castTimer += dt
	entry := e.cfg.Summon.ForPhase(e.phase)
	if s.castTimer < entry.CastTime {
		return
	}
	s.spawned = e.spawnMinions(entry)
	e.ChangeState(SummonComplete)
}

func (e *Encounter) spawnMinions(entry SummonPhase) int {
	if len(entry.Pool) == 0 {
		e.log.Warn("boss: summon skipped, empty minion pool", "phase", e.phase)
		return 0
	}
	if e.deps.Minions == nil {
		return 0
	}
	center := e.position()
	for range entry.Count {
		kind := entry.Pool[e.rng.IntN(len(entry.Pool))]
		var pos cp.Vector
		if e.deps.Area != nil {
			pos = e.deps.Area.RandomPoint(e.rng)
		} else {
			pos = RandomPointInCircle(e.rng, center, e.cfg.Summon.Radius)
		}
		e.deps.Minions.SpawnMinion(MinionSpawnRequest{Type: kind, Position: pos})
	}
	return max(entry.Count, 0)
}
