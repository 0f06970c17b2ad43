package entity

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
	"golang.org/x/image/colornames"
)

// BossOptions carries what SpawnBoss needs beyond the boss config.
type BossOptions struct {
	Position  cp.Vector
	Spec      string
	Minions   prefabs.MinionCatalog
	Telegraph prefabs.TelegraphSpec
	Rand      boss.Rand
	Logger    *slog.Logger
}

// SpawnBoss creates a boss entity and wires its encounter to the world: the
// player is the target, projectiles, minions and telegraphs become entities,
// and encounter events are mirrored onto the world event queue. The
// encounter is started before returning.
func SpawnBoss(w *ecs.World, cfg boss.Config, opts BossOptions) (ecs.Entity, *boss.Encounter, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	radius := cfg.Radius
	if radius <= 0 {
		radius = 24
	}
	e, body, err := spawnBody(w, opts.Position, radius, true, colornames.Mediumpurple)
	if err != nil {
		return 0, nil, fmt.Errorf("boss %s: %w", cfg.ID, err)
	}

	status := combat.NewStatusEffects(cfg.Resistance.Multipliers)
	tracker := &playerTracker{w: w, self: e, reach: radius}
	deps := boss.Collaborators{
		Status:      status,
		Target:      tracker,
		Body:        bodyBinding{w: w, body: body, radius: radius},
		Projectiles: projectileSpawner{w: w},
		Minions:     minionSpawner{w: w, catalog: opts.Minions, owner: e, log: log},
		Area:        summonArea{w: w},
		Telegraphs: telegraphFactory{
			w:      w,
			spec:   opts.Telegraph,
			length: cfg.Charge.Speed*cfg.Charge.Duration + radius,
		},
	}

	encOpts := []boss.Option{boss.WithLogger(log)}
	if opts.Rand != nil {
		encOpts = append(encOpts, boss.WithRand(opts.Rand))
	}
	enc, err := boss.NewEncounter(cfg, deps, encOpts...)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, nil, err
	}
	tracker.enc = enc

	comp := &component.Boss{Encounter: enc, Spec: opts.Spec, Subs: bridgeEvents(w, e, enc)}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), comp); err != nil {
		return 0, nil, fmt.Errorf("boss %s: add boss: %w", cfg.ID, err)
	}
	if err := ecs.Add(w, e, component.StatusComponent.Kind(), status); err != nil {
		return 0, nil, fmt.Errorf("boss %s: add status: %w", cfg.ID, err)
	}
	if cfg.Script != "" {
		_ = ecs.Add(w, e, component.EncounterScriptComponent.Kind(), &component.EncounterScript{Path: cfg.Script})
	}

	enc.Start()
	return e, enc, nil
}

// DespawnBoss tears the encounter down without a defeat and removes the
// entity.
func DespawnBoss(w *ecs.World, e ecs.Entity) {
	if b, ok := ecs.Get(w, e, component.BossComponent.Kind()); ok {
		b.Encounter.Teardown()
		b.Unsubscribe()
	}
	ecs.DestroyEntity(w, e)
}

func bridgeEvents(w *ecs.World, e ecs.Entity, enc *boss.Encounter) []boss.Subscription {
	push := func(t ecs.EventType, data any) {
		w.Events().Push(ecs.Event{Type: t, Entity: e, Data: data})
	}
	ev := enc.Events()
	return []boss.Subscription{
		ev.OnSpawned(func() { push(ecs.EventBossSpawned, enc.Config().ID) }),
		ev.OnDefeated(func(*boss.Encounter) { push(ecs.EventBossDefeated, enc.Config().ID) }),
		ev.OnPhaseChanged(func(phase int) { push(ecs.EventPhaseChanged, phase) }),
		ev.OnHealthPercentageChanged(func(pct float64) { push(ecs.EventHealthChanged, pct) }),
		ev.OnStateChanged(func(from, to boss.State) { push(ecs.EventStateChanged, StateChange{From: from, To: to}) }),
	}
}

// StateChange is the payload of ecs.EventStateChanged.
type StateChange struct {
	From, To boss.State
}

// playerTracker targets the first live player and walks the boss toward it
// at the encounter's current speed.
type playerTracker struct {
	w    *ecs.World
	self ecs.Entity
	enc  *boss.Encounter
	// reach is how close the boss walks before stopping.
	reach float64
}

func (t *playerTracker) Target() (cp.Vector, bool) {
	_, pos, ok := Player(t.w)
	return pos, ok
}

func (t *playerTracker) Pursue(dt float64) {
	target, ok := t.Target()
	speed := t.enc.Combatant().Speed
	if !ok || speed <= 0 {
		return
	}
	pb, ok := ecs.Get(t.w, t.self, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return
	}
	pos := pb.Body.Position()
	delta := target.Sub(pos)
	dist := delta.Length()
	if dist <= t.reach {
		return
	}
	step := min(speed*dt, dist-t.reach)
	pb.Body.SetPosition(t.w.PhysicsWorld().Clamp(pos.Add(delta.Mult(step/dist)), pb.Radius))
}
