package arena

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
)

const dt = 1.0 / 60

func testOptions() Options {
	return Options{
		Rand:      rand.New(rand.NewPCG(3, 4)),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		AutoPilot: &component.AutoPilot{Range: 220, Orbit: 1},
	}
}

func loadArena(t *testing.T, opts Options) *Arena {
	t.Helper()
	a, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return a
}

func TestLoadSpecsDefaults(t *testing.T) {
	specs, err := LoadSpecs(Options{})
	if err != nil {
		t.Fatalf("LoadSpecs: %v", err)
	}
	if specs.Arena.Boss != "warden.yaml" || specs.Boss.ID != "warden" {
		t.Fatalf("unexpected boss %q / %q", specs.Arena.Boss, specs.Boss.ID)
	}
	for _, pool := range specs.Boss.Summon.Phases {
		for _, name := range pool.Pool {
			if _, ok := specs.Minions[name]; !ok {
				t.Fatalf("summon pool names unknown minion %q", name)
			}
		}
	}
	if specs.Player.Shot.Damage <= 0 {
		t.Fatal("player shot has no damage")
	}
}

func TestLoadSpecsMissingFile(t *testing.T) {
	if _, err := LoadSpecs(Options{Arena: "missing.yaml"}); err == nil {
		t.Fatal("expected an error for a missing arena")
	}
}

func TestAutoPilotDamagesBoss(t *testing.T) {
	a := loadArena(t, testOptions())
	if !a.Encounter.Started() {
		t.Fatal("boss should be started on spawn")
	}

	for range int(30 / dt) {
		a.Update(dt)
		if a.Encounter.Health() < a.Encounter.MaxHealth() {
			return
		}
	}
	t.Fatalf("autopilot never hit the boss, health %v", a.Encounter.Health())
}

func TestResetKeepsLiveBoss(t *testing.T) {
	a := loadArena(t, testOptions())
	for range 30 {
		a.Update(dt)
	}
	a.Encounter.TakeDamage(combat.Hit{Amount: 600, Tag: combat.TagPhysical})
	oldPlayer := a.Player
	enc := a.Encounter

	if err := a.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if a.Encounter != enc {
		t.Fatal("reset of a live boss should keep the encounter")
	}
	if a.Encounter.Health() != a.Encounter.MaxHealth() || a.Encounter.State() != boss.Idle {
		t.Fatalf("reset left health=%v state=%v", a.Encounter.Health(), a.Encounter.State())
	}
	if ecs.IsAlive(a.World, oldPlayer) || !a.PlayerAlive() {
		t.Fatal("reset should respawn the player")
	}
	if n := ecs.Count(a.World, component.ProjectileComponent.Kind()); n != 0 {
		t.Fatalf("reset left %d projectiles", n)
	}
	if !ecs.Has(a.World, a.Player, component.AutoPilotComponent.Kind()) {
		t.Fatal("respawned player lost its autopilot")
	}
}

func TestResetRebuildsAfterDefeat(t *testing.T) {
	a := loadArena(t, testOptions())
	a.Encounter.Kill()
	a.Update(dt)
	if ecs.IsAlive(a.World, a.Boss) {
		t.Fatal("defeated boss should be removed")
	}

	old := a.World
	if err := a.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if a.World == old || !ecs.IsAlive(a.World, a.Boss) || a.Encounter.Defeated() {
		t.Fatal("reset after a defeat should rebuild the arena")
	}
}

func TestReloadScriptRecompiles(t *testing.T) {
	loads := 0
	opts := testOptions()
	opts.Scripts = func(name string) ([]byte, error) {
		loads++
		return prefabs.LoadScript(name)
	}
	a := loadArena(t, opts)
	a.Update(dt)
	a.Update(dt)
	if loads != 1 {
		t.Fatalf("script loaded %d times, want 1", loads)
	}

	if err := a.Reload(prefabs.Change{Name: "scripts/warden.tengo", Script: true}); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	a.Update(dt)
	if loads != 2 {
		t.Fatalf("script loaded %d times after reload, want 2", loads)
	}
}

func TestReloadBossSpecKeepsFight(t *testing.T) {
	a := loadArena(t, testOptions())
	a.Encounter.TakeDamage(combat.Hit{Amount: 100, Tag: combat.TagPhysical})
	health := a.Encounter.Health()
	world := a.World

	if err := a.Reload(prefabs.Change{Name: "warden.yaml"}); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if a.World != world || a.Encounter.Health() != health {
		t.Fatal("boss spec reload should apply to the live encounter")
	}
}

func TestReloadArenaRebuilds(t *testing.T) {
	a := loadArena(t, testOptions())
	world := a.World
	if err := a.Reload(prefabs.Change{Name: "arena.yaml"}); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if a.World == world || !a.PlayerAlive() {
		t.Fatal("arena reload should rebuild the world")
	}
}
