// Package arena assembles a playable boss fight from prefab files: the
// world, its entities and the system order. The windowed game and the
// headless simulator both run on it.
package arena

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
	"github.com/milk9111/bossfight/ecs/system"
	"github.com/milk9111/bossfight/prefabs"
)

// Options selects prefab files and runtime knobs. Empty file names fall
// back to the defaults.
type Options struct {
	Arena   string
	Player  string
	Minions string

	Rand   boss.Rand
	Logger *slog.Logger
	// AutoPilot replaces keyboard input for the player when set.
	AutoPilot *component.AutoPilot
	// Scripts overrides where encounter scripts are read from.
	Scripts system.ScriptLoader
}

func (o Options) withDefaults() Options {
	if o.Arena == "" {
		o.Arena = "arena.yaml"
	}
	if o.Player == "" {
		o.Player = "player.yaml"
	}
	if o.Minions == "" {
		o.Minions = "minions.yaml"
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Specs are the decoded prefab files an arena is built from.
type Specs struct {
	Arena   prefabs.ArenaSpec
	Boss    boss.Config
	Player  prefabs.PlayerSpec
	Minions prefabs.MinionCatalog
}

// LoadSpecs reads every prefab the arena needs.
func LoadSpecs(opts Options) (Specs, error) {
	opts = opts.withDefaults()
	var s Specs
	var err error
	if s.Arena, err = prefabs.LoadSpec[prefabs.ArenaSpec](opts.Arena); err != nil {
		return Specs{}, err
	}
	if s.Arena.Boss == "" {
		return Specs{}, fmt.Errorf("arena: %s names no boss", opts.Arena)
	}
	if s.Boss, err = prefabs.LoadBossConfig(s.Arena.Boss); err != nil {
		return Specs{}, err
	}
	if s.Player, err = prefabs.LoadSpec[prefabs.PlayerSpec](opts.Player); err != nil {
		return Specs{}, err
	}
	if s.Minions, err = prefabs.LoadSpec[prefabs.MinionCatalog](opts.Minions); err != nil {
		return Specs{}, err
	}
	return s, nil
}

// Arena is one running fight.
type Arena struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Scripts   *system.EncounterScriptSystem

	Boss      ecs.Entity
	Encounter *boss.Encounter
	Player    ecs.Entity

	specs Specs
	opts  Options
}

// Load reads the prefabs named by opts and builds the arena.
func Load(opts Options) (*Arena, error) {
	opts = opts.withDefaults()
	specs, err := LoadSpecs(opts)
	if err != nil {
		return nil, err
	}
	return New(specs, opts)
}

// New builds an arena from already decoded specs.
func New(specs Specs, opts Options) (*Arena, error) {
	a := &Arena{specs: specs, opts: opts.withDefaults()}
	if err := a.build(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena) Specs() Specs { return a.specs }

func (a *Arena) build() error {
	w := ecs.NewWorld()
	if _, err := entity.SpawnArena(w, a.specs.Arena); err != nil {
		return err
	}

	player, err := entity.SpawnPlayer(w, a.specs.Player, a.specs.Arena.PlayerSpawn.Vector())
	if err != nil {
		return err
	}
	if a.opts.AutoPilot != nil {
		ap := *a.opts.AutoPilot
		if err := ecs.Add(w, player, component.AutoPilotComponent.Kind(), &ap); err != nil {
			return fmt.Errorf("arena: add autopilot: %w", err)
		}
	}

	bossEnt, enc, err := entity.SpawnBoss(w, a.specs.Boss, entity.BossOptions{
		Position:  a.specs.Arena.BossSpawn.Vector(),
		Spec:      a.specs.Arena.Boss,
		Minions:   a.specs.Minions,
		Telegraph: a.specs.Arena.Telegraph,
		Rand:      a.opts.Rand,
		Logger:    a.opts.Logger,
	})
	if err != nil {
		return err
	}

	scripts := system.NewEncounterScriptSystem(a.opts.Logger, a.opts.Scripts)
	sched := ecs.NewScheduler()
	if a.opts.AutoPilot == nil {
		sched.Add(system.NewInputSystem())
	} else {
		sched.Add(system.NewAutoPilotSystem())
	}
	sched.Add(system.NewPlayerControlSystem())
	sched.Add(system.NewBossSystem())
	sched.Add(system.NewMinionSystem())
	sched.Add(system.NewPhysicsSystem())
	sched.Add(system.NewProjectileSystem())
	sched.Add(system.NewStatusSystem())
	sched.Add(system.NewTTLSystem())
	sched.Add(scripts)

	a.World = w
	a.Scheduler = sched
	a.Scripts = scripts
	a.Boss = bossEnt
	a.Encounter = enc
	a.Player = player
	return nil
}

// Update advances the fight by dt seconds.
func (a *Arena) Update(dt float64) {
	a.Scheduler.Update(a.World, dt)
}

// PlayerAlive reports whether the player is still in the fight.
func (a *Arena) PlayerAlive() bool {
	return ecs.IsAlive(a.World, a.Player)
}

// Reset restarts the fight. A live boss is reset in place; after a defeat
// the whole arena is rebuilt.
func (a *Arena) Reset() error {
	if !ecs.IsAlive(a.World, a.Boss) {
		return a.build()
	}

	w := a.World
	for _, e := range ecs.Entities(w) {
		if ecs.Has(w, e, component.ProjectileComponent.Kind()) || ecs.Has(w, e, component.MinionComponent.Kind()) {
			ecs.DestroyEntity(w, e)
		}
	}
	a.Encounter.Reset()
	if body, ok := w.PhysicsWorld().Body(a.Boss); ok {
		body.SetPosition(a.specs.Arena.BossSpawn.Vector())
	}

	if ecs.IsAlive(w, a.Player) {
		ecs.DestroyEntity(w, a.Player)
	}
	player, err := entity.SpawnPlayer(w, a.specs.Player, a.specs.Arena.PlayerSpawn.Vector())
	if err != nil {
		return err
	}
	if a.opts.AutoPilot != nil {
		ap := *a.opts.AutoPilot
		_ = ecs.Add(w, player, component.AutoPilotComponent.Kind(), &ap)
	}
	a.Player = player
	return nil
}

// Reload applies an edited prefab. Boss spec edits are applied to the live
// encounter, script edits recompile the script, and anything else rebuilds
// the arena.
func (a *Arena) Reload(change prefabs.Change) error {
	if change.Script {
		a.Scripts.Reload(change.Name)
		return nil
	}

	if path.Base(change.Name) == path.Base(a.specs.Arena.Boss) {
		cfg, err := prefabs.LoadBossConfig(a.specs.Arena.Boss)
		if err != nil {
			return err
		}
		if err := a.Encounter.ApplyConfig(cfg); err != nil {
			return err
		}
		a.specs.Boss = cfg
		return nil
	}

	specs, err := LoadSpecs(a.opts)
	if err != nil {
		return err
	}
	a.specs = specs
	return a.build()
}

// Snapshot returns the encounter's debug snapshot.
func (a *Arena) Snapshot() boss.Snapshot {
	return a.Encounter.Snapshot()
}
