package system

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/entity"
	"github.com/milk9111/bossfight/prefabs"
)

const tick = 0.25

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testArena(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.SpawnArena(w, prefabs.ArenaSpec{Name: "test", Width: 1000, Height: 1000}); err != nil {
		t.Fatalf("SpawnArena: %v", err)
	}
	return w
}

func testPlayer(t *testing.T, w *ecs.World, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.SpawnPlayer(w, prefabs.PlayerSpec{
		MoveSpeed: 100,
		Health:    100,
		Radius:    10,
		IFrames:   1,
		Shot:      prefabs.ShotSpec{Damage: 10, Speed: 400, Tag: combat.TagPhysical, Radius: 4, Lifetime: 2, Cooldown: 0.5},
	}, pos)
	if err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}
	return e
}

// passiveBoss never leaves Idle: its detection range is tiny.
func passiveBoss() boss.Config {
	return boss.Config{
		ID:              "dummy",
		MaxHealth:       100,
		Radius:          20,
		DetectionRange:  1,
		PhaseThresholds: []float64{0.7},
		Weights:         boss.PatternWeights{Charge: 1},
		Cooldown:        boss.CooldownRange{Min: 1, Max: 1},
		Charge:          boss.ChargeConfig{Phase1Count: 1, Phase2CountMin: 1, Phase2CountMax: 1},
	}
}

func testBoss(t *testing.T, w *ecs.World, cfg boss.Config, pos cp.Vector) (ecs.Entity, *boss.Encounter) {
	t.Helper()
	e, enc, err := entity.SpawnBoss(w, cfg, entity.BossOptions{
		Position: pos,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("SpawnBoss: %v", err)
	}
	return e, enc
}
