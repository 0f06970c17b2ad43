package boss

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/combat"
)

// Encounter directs one boss fight: phase progression, pattern selection and
// the per-pattern state sequences. It is driven by Update and is not safe for
// concurrent use.
type Encounter struct {
	id   uuid.UUID
	cfg  Config
	deps Collaborators
	rng  Rand
	log  *slog.Logger

	events    Events
	combatant *combat.Combatant
	weights   PatternWeights

	phase      int
	maxPhases  int
	state      State
	stateTimer float64
	lastPct    float64

	started  bool
	dead     bool
	tornDown bool

	facing            cp.Vector
	cooldownRemaining float64
	telegraph         Telegraph

	charge     chargeExecutor
	projectile projectileExecutor
	summon     summonExecutor
	handlers   [stateCount]stateHandler
}

type Option func(*Encounter)

// WithRand replaces the default math/rand/v2 source.
func WithRand(r Rand) Option {
	return func(e *Encounter) {
		if r != nil {
			e.rng = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Encounter) {
		if l != nil {
			e.log = l
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(e *Encounter) {
		e.id = id
	}
}

// NewEncounter validates cfg and builds an encounter in Idle at phase 1.
func NewEncounter(cfg Config, deps Collaborators, opts ...Option) (*Encounter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("boss: invalid config %q: %w", cfg.ID, err)
	}

	e := &Encounter{
		id:        uuid.New(),
		cfg:       cfg,
		deps:      deps,
		rng:       globalRand{},
		log:       slog.Default(),
		combatant: combat.NewCombatant(cfg.MaxHealth, cfg.Damage, cfg.Speed, combat.FactionEnemy),
		weights:   cfg.Weights,
		phase:     1,
		maxPhases: cfg.maxPhases(),
		state:     Idle,
		lastPct:   1,
		facing:    cp.Vector{X: 1},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("encounter", e.id.String(), "boss", cfg.ID)

	e.handlers[Idle] = stateHandler{tick: e.tickIdle}
	e.handlers[PatternCooldown] = stateHandler{tick: e.tickCooldown}
	e.charge.install(e, &e.handlers)
	e.projectile.install(e, &e.handlers)
	e.summon.install(e, &e.handlers)
	return e, nil
}

func (e *Encounter) ID() uuid.UUID                { return e.id }
func (e *Encounter) Config() Config               { return e.cfg }
func (e *Encounter) Events() *Events              { return &e.events }
func (e *Encounter) State() State                 { return e.state }
func (e *Encounter) StateTimer() float64          { return e.stateTimer }
func (e *Encounter) Phase() int                   { return e.phase }
func (e *Encounter) MaxPhases() int               { return e.maxPhases }
func (e *Encounter) Health() float64              { return e.combatant.Health }
func (e *Encounter) MaxHealth() float64           { return e.combatant.MaxHealth }
func (e *Encounter) HealthPercentage() float64    { return e.combatant.Percentage() }
func (e *Encounter) Combatant() *combat.Combatant { return e.combatant }
func (e *Encounter) Defeated() bool               { return e.dead }
func (e *Encounter) Started() bool                { return e.started }
func (e *Encounter) ChargeCount() int             { return e.charge.count }
func (e *Encounter) MaxChargeCount() int          { return e.charge.maxCount }
func (e *Encounter) BurstCount() int              { return e.projectile.burstCount }

// WallBounce reports the wall-bounce flag drawn for the current charge run.
// It has no effect on movement.
func (e *Encounter) WallBounce() bool { return e.charge.wallBounce }

// ChargeDirection is the direction locked in for the current charge.
func (e *Encounter) ChargeDirection() cp.Vector { return e.charge.dir }

func (e *Encounter) PatternWeights() PatternWeights { return e.weights }

// SetPatternWeights replaces the weights used by subsequent selections.
func (e *Encounter) SetPatternWeights(w PatternWeights) {
	e.weights = w
}

// Start announces the boss. It is idempotent.
func (e *Encounter) Start() {
	if e == nil || e.started || e.tornDown {
		return
	}
	e.started = true
	e.log.Info("boss: spawned", "max_health", e.combatant.MaxHealth, "max_phases", e.maxPhases)
	e.events.spawned.emit(func(fn func()) { fn() })
}

// Update advances the encounter by dt seconds: phase first, then exactly one
// dispatch to the current state's handler.
func (e *Encounter) Update(dt float64) {
	if e == nil || e.dead || e.tornDown {
		return
	}
	if dt < 0 {
		dt = 0
	}
	e.updatePhase()
	e.stateTimer += dt
	if tick := e.handlers[e.state].tick; tick != nil {
		tick(dt)
	}
}

// ChangeState moves to next, resets the state timer and runs next's on-enter
// hook. Leaving ChargePrepare always releases the telegraph.
func (e *Encounter) ChangeState(next State) {
	if e == nil || next < 0 || next >= stateCount {
		return
	}
	prev := e.state
	e.destroyTelegraph()
	e.state = next
	e.stateTimer = 0
	e.log.Debug("boss: state changed", "from", prev.String(), "to", next.String(), "phase", e.phase)
	e.events.stateChanged.emit(func(fn func(State, State)) { fn(prev, next) })
	if enter := e.handlers[next].enter; enter != nil {
		enter(prev)
	}
}

// Kill forces the boss to zero health and runs the defeat path.
func (e *Encounter) Kill() {
	if e == nil || e.dead || e.tornDown {
		return
	}
	e.combatant.Health = 0
	e.notifyHealth()
	e.die()
}

func (e *Encounter) die() {
	if e.dead {
		return
	}
	e.dead = true
	e.destroyTelegraph()
	e.log.Info("boss: defeated", "phase", e.phase, "state", e.state.String())
	e.events.defeated.emit(func(fn func(*Encounter)) { fn(e) })
}

// Teardown releases owned resources without reporting a defeat. The
// encounter ignores further updates and damage.
func (e *Encounter) Teardown() {
	if e == nil || e.tornDown {
		return
	}
	e.tornDown = true
	e.destroyTelegraph()
}

func (e *Encounter) TornDown() bool { return e.tornDown }

// Reset restores full health, phase 1 and Idle. It is the only way the phase
// can decrease.
func (e *Encounter) Reset() {
	if e == nil {
		return
	}
	e.destroyTelegraph()
	e.combatant.MaxHealth = e.cfg.MaxHealth
	e.combatant.Reset()
	e.dead = false
	e.tornDown = false
	e.cooldownRemaining = 0
	e.charge.reset()
	e.projectile.reset()
	e.summon.reset()
	e.facing = cp.Vector{X: 1}
	e.weights = e.cfg.Weights

	if e.phase != 1 {
		e.phase = 1
		e.events.phaseChanged.emit(func(fn func(int)) { fn(1) })
	}
	e.notifyHealth()
	e.log.Info("boss: reset")
	e.ChangeState(Idle)
}

// ApplyConfig swaps the tuning tables and weights of a live encounter.
// Health and phase are kept. A config with fewer phases than the current
// phase is rejected with ErrMaxPhases, since only Reset lowers the phase.
func (e *Encounter) ApplyConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("boss: invalid config %q: %w", cfg.ID, err)
	}
	if n := cfg.maxPhases(); n < e.phase {
		return fmt.Errorf("boss: config %q has %d phases but the encounter is in phase %d: %w", cfg.ID, n, e.phase, ErrMaxPhases)
	}
	e.cfg = cfg
	e.weights = cfg.Weights
	e.maxPhases = cfg.maxPhases()
	e.combatant.Damage = cfg.Damage
	e.combatant.Speed = cfg.Speed
	e.log.Info("boss: config applied", "weights", fmt.Sprintf("%+v", cfg.Weights))
	return nil
}

func (e *Encounter) position() cp.Vector {
	if e.deps.Body == nil {
		return cp.Vector{}
	}
	return e.deps.Body.Position()
}

func (e *Encounter) target() (cp.Vector, bool) {
	if e.deps.Target == nil {
		return cp.Vector{}, false
	}
	return e.deps.Target.Target()
}

func (e *Encounter) pursue(dt float64) {
	if e.deps.Target != nil {
		e.deps.Target.Pursue(dt)
	}
}
