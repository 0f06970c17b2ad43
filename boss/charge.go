package boss

import "github.com/jakecoffman/cp"

// chargeExecutor runs ChargePrepare -> Charging -> ChargeStunned, looping back
// to ChargePrepare until the drawn number of charges is spent.
type chargeExecutor struct {
	count      int
	maxCount   int
	wallBounce bool
	dir        cp.Vector
	start      cp.Vector
}

func (c *chargeExecutor) install(e *Encounter, table *[stateCount]stateHandler) {
	table[ChargePrepare] = stateHandler{
		enter: func(from State) { c.enterPrepare(e, from) },
		tick:  func(float64) { c.tickPrepare(e) },
	}
	table[Charging] = stateHandler{
		tick: func(dt float64) { c.tickCharging(e, dt) },
	}
	table[ChargeStunned] = stateHandler{
		tick: func(float64) { c.tickStunned(e) },
	}
}

func (c *chargeExecutor) reset() {
	*c = chargeExecutor{}
}

func (c *chargeExecutor) enterPrepare(e *Encounter, from State) {
	// Returning from a stun continues the current run of charges.
	if from != ChargeStunned {
		cfg := e.cfg.Charge
		if e.phase <= 1 {
			c.maxCount = cfg.Phase1Count
			c.wallBounce = cfg.Phase1WallBounce
		} else {
			lo, hi := cfg.Phase2CountMin, max(cfg.Phase2CountMax, cfg.Phase2CountMin)
			c.maxCount = lo + e.rng.IntN(hi-lo+1)
			c.wallBounce = cfg.Phase2WallBounce
		}
		c.maxCount = max(c.maxCount, 1)
		c.count = 0
	}

	if c.dir.LengthSq() == 0 {
		c.dir = e.facing
	}
	pos := e.position()
	if target, ok := e.target(); ok {
		c.aim(pos, target)
	}
	e.createTelegraph(pos, c.dir)
}

func (c *chargeExecutor) aim(from, target cp.Vector) {
	delta := target.Sub(from)
	if delta.LengthSq() == 0 {
		return
	}
	c.dir = delta.Normalize()
}

func (c *chargeExecutor) tickPrepare(e *Encounter) {
	pos := e.position()
	if target, ok := e.target(); ok {
		c.aim(pos, target)
		if e.telegraph != nil {
			e.telegraph.SetOrigin(pos)
			e.telegraph.SetDirection(c.dir)
		}
	}

	prepare := e.cfg.Charge.PrepareTime
	progress := 1.0
	if prepare > 0 {
		progress = e.stateTimer / prepare
	}
	if e.telegraph != nil {
		e.telegraph.SetAlpha(TelegraphAlpha(progress))
	}

	if e.stateTimer >= prepare {
		e.destroyTelegraph()
		c.start = pos
		e.facing = c.dir
		e.ChangeState(Charging)
	}
}

func (c *chargeExecutor) tickCharging(e *Encounter, dt float64) {
	if e.deps.Body != nil && c.dir.LengthSq() > 0 {
		e.deps.Body.SetPosition(e.deps.Body.Position().Add(c.dir.Mult(e.cfg.Charge.Speed * dt)))
	}
	if e.stateTimer >= e.cfg.Charge.Duration {
		e.ChangeState(ChargeStunned)
	}
}

func (c *chargeExecutor) tickStunned(e *Encounter) {
	if e.stateTimer < e.cfg.Charge.StunTime {
		return
	}
	c.count++
	if c.count >= c.maxCount {
		e.StartPatternCooldown()
		return
	}
	e.ChangeState(ChargePrepare)
}
