package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/common"
)

// FanDirections spreads n unit vectors over spread radians centered on
// bearing. A single projectile flies straight along the bearing.
func FanDirections(bearing, spread float64, n int) []cp.Vector {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []cp.Vector{cp.ForAngle(bearing)}
	}
	start := bearing - spread/2
	step := spread / float64(n-1)
	dirs := make([]cp.Vector, n)
	for i := range dirs {
		dirs[i] = cp.ForAngle(start + step*float64(i))
	}
	return dirs
}

// CircleDirections returns n unit vectors evenly spaced around the circle,
// starting at angle zero.
func CircleDirections(n int) []cp.Vector {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	dirs := make([]cp.Vector, n)
	for i := range dirs {
		dirs[i] = cp.ForAngle(step * float64(i))
	}
	return dirs
}

// projectileExecutor runs ShootingPrepare -> Shooting.
type projectileExecutor struct {
	burstCount int
	burstTimer float64
	warmUp     float64
}

func (p *projectileExecutor) install(e *Encounter, table *[stateCount]stateHandler) {
	table[ShootingPrepare] = stateHandler{
		enter: func(State) {
			p.reset()
			e.ChangeState(Shooting)
		},
	}
	table[Shooting] = stateHandler{
		tick: func(dt float64) {
			if e.phase <= 1 {
				p.tickSingleOrBurst(e, dt)
				return
			}
			p.tickVolley(e, dt)
		},
	}
}

func (p *projectileExecutor) reset() {
	*p = projectileExecutor{}
}

// tickSingleOrBurst re-rolls burst versus single handling on every tick.
func (p *projectileExecutor) tickSingleOrBurst(e *Encounter, dt float64) {
	cfg := e.cfg.Projectile
	if e.rng.IntN(2) == 0 {
		p.burstTimer += dt
		if p.burstCount < cfg.Phase1BurstCount && p.burstTimer >= cfg.BurstInterval {
			e.fire(e.aimDirection())
			p.burstCount++
			p.burstTimer = 0
		}
		if p.burstCount >= cfg.Phase1BurstCount {
			e.StartPatternCooldown()
		}
		return
	}

	if e.stateTimer >= cfg.SingleShotDelay {
		e.fire(e.aimDirection())
		e.StartPatternCooldown()
	}
}

func (p *projectileExecutor) tickVolley(e *Encounter, dt float64) {
	p.warmUp += dt
	if p.warmUp < VolleyWarmUp {
		return
	}

	cfg := e.cfg.Projectile
	var dirs []cp.Vector
	if e.rng.IntN(2) == 0 {
		dirs = FanDirections(e.aimDirection().ToAngle(), common.DegToRad(cfg.FanAngle), cfg.FanCount)
	} else {
		dirs = CircleDirections(cfg.CircleCount)
	}
	for _, dir := range dirs {
		e.fire(dir)
	}
	e.StartPatternCooldown()
}

func (e *Encounter) aimDirection() cp.Vector {
	if target, ok := e.target(); ok {
		delta := target.Sub(e.position())
		if delta.LengthSq() > 0 {
			e.facing = delta.Normalize()
		}
	}
	return e.facing
}

func (e *Encounter) fire(dir cp.Vector) {
	if e.deps.Projectiles == nil {
		return
	}
	cfg := e.cfg.Projectile
	e.deps.Projectiles.SpawnProjectile(ProjectileSpec{
		Position:  e.position(),
		Direction: dir,
		Speed:     cfg.Speed,
		Damage:    cfg.Damage,
		Tag:       cfg.Tag,
		Radius:    cfg.Radius,
		Lifetime:  cfg.Lifetime,
	})
}
