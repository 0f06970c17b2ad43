package boss

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/combat"
)

func angleDeg(v cp.Vector) float64 {
	return v.ToAngle() * 180 / math.Pi
}

func TestFanDirections(t *testing.T) {
	cases := []struct {
		name    string
		bearing float64
		spread  float64
		n       int
		want    []float64
	}{
		{"five_over_sixty", 0, 60, 5, []float64{-30, -15, 0, 15, 30}},
		{"two_over_ninety", 90, 90, 2, []float64{45, 135}},
		{"single_flies_straight", 45, 60, 1, []float64{45}},
		{"none", 0, 60, 0, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dirs := FanDirections(c.bearing*math.Pi/180, c.spread*math.Pi/180, c.n)
			if len(dirs) != len(c.want) {
				t.Fatalf("got %d directions, want %d", len(dirs), len(c.want))
			}
			for i, d := range dirs {
				if math.Abs(d.Length()-1) > 1e-9 {
					t.Fatalf("direction %d not unit: %v", i, d)
				}
				if math.Abs(angleDeg(d)-c.want[i]) > 1e-9 {
					t.Fatalf("direction %d angle %v, want %v", i, angleDeg(d), c.want[i])
				}
			}
		})
	}
}

func TestCircleDirections(t *testing.T) {
	dirs := CircleDirections(4)
	want := []cp.Vector{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}
	if len(dirs) != len(want) {
		t.Fatalf("got %d directions", len(dirs))
	}
	for i := range want {
		if dirs[i].Distance(want[i]) > 1e-9 {
			t.Fatalf("direction %d = %v, want %v", i, dirs[i], want[i])
		}
	}
	if CircleDirections(0) != nil {
		t.Fatal("expected no directions for n=0")
	}
}

func newShootingEncounter(t *testing.T, rng Rand) (*Encounter, *harness) {
	t.Helper()
	h := newHarness()
	cfg := testConfig()
	cfg.Weights = PatternWeights{Projectile: 1}
	e := newTestEncounter(t, cfg, h.deps(), rng)
	return e, h
}

func TestShootingPrepareIsImmediate(t *testing.T) {
	e, _ := newShootingEncounter(t, fixedInt(0))
	var path []State
	e.Events().OnStateChanged(func(_, to State) { path = append(path, to) })

	runUntil(e, 40, func() bool { return e.State() != Idle })
	if len(path) != 2 || path[0] != ShootingPrepare || path[1] != Shooting {
		t.Fatalf("unexpected transitions %v", path)
	}
	if e.StateTimer() != 0 || e.BurstCount() != 0 {
		t.Fatalf("shooting should start fresh, timer=%v burst=%d", e.StateTimer(), e.BurstCount())
	}
}

func TestPhase1BurstPath(t *testing.T) {
	e, h := newShootingEncounter(t, fixedInt(0))
	runUntil(e, 40, func() bool { return e.State() == Shooting })

	ticks := 0
	runUntil(e, 40, func() bool {
		ticks++
		return e.State() == PatternCooldown
	})
	if len(h.shots.specs) != 3 || ticks != 3 {
		t.Fatalf("expected 3 shots over 3 ticks, got %d shots over %d ticks", len(h.shots.specs), ticks)
	}
	for _, s := range h.shots.specs {
		if s.Direction.Distance(cp.Vector{X: 1}) > 1e-9 {
			t.Fatalf("shot not aimed at target: %v", s.Direction)
		}
		if s.Speed != 200 || s.Damage != 5 || s.Tag != combat.TagFire {
			t.Fatalf("unexpected projectile payload %+v", s)
		}
	}
}

func TestPhase1SinglePath(t *testing.T) {
	e, h := newShootingEncounter(t, fixedInt(1))
	runUntil(e, 40, func() bool { return e.State() == Shooting })

	ticks := 0
	runUntil(e, 40, func() bool {
		ticks++
		return e.State() == PatternCooldown
	})
	if len(h.shots.specs) != 1 {
		t.Fatalf("expected a single shot, got %d", len(h.shots.specs))
	}
	if got := float64(ticks) * tickDT; got != testConfig().Projectile.SingleShotDelay {
		t.Fatalf("single shot after %vs", got)
	}
}

func TestPhase1CoinFlipRerollsEveryTick(t *testing.T) {
	flips := 0
	rng := stubRand{f: 0.5, intN: func(n int) int {
		if n != 2 {
			return 0
		}
		flips++
		return 0
	}}
	e, _ := newShootingEncounter(t, rng)
	runUntil(e, 40, func() bool { return e.State() == Shooting })
	runUntil(e, 40, func() bool { return e.State() == PatternCooldown })
	if flips != 3 {
		t.Fatalf("expected one coin flip per shooting tick, got %d", flips)
	}
}

func TestPhase2Volleys(t *testing.T) {
	cases := []struct {
		name string
		flip int
		want int
	}{
		{"fan", 0, 5},
		{"circle", 1, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, h := newShootingEncounter(t, fixedInt(c.flip))
			e.TakeDamage(combat.Hit{Amount: 400, Tag: combat.TagPhysical})
			runUntil(e, 40, func() bool { return e.State() == Shooting })
			if e.Phase() != 2 {
				t.Fatalf("expected phase 2, got %d", e.Phase())
			}

			e.Update(tickDT)
			if len(h.shots.specs) != 0 {
				t.Fatal("volley fired before warm-up")
			}
			e.Update(tickDT)
			if len(h.shots.specs) != c.want {
				t.Fatalf("expected %d projectiles in one tick, got %d", c.want, len(h.shots.specs))
			}
			if e.State() != PatternCooldown {
				t.Fatalf("expected cooldown after volley, got %v", e.State())
			}
		})
	}
}

func TestFanCenteredOnTarget(t *testing.T) {
	e, h := newShootingEncounter(t, fixedInt(0))
	h.target.pos = cp.Vector{Y: 100}
	e.TakeDamage(combat.Hit{Amount: 400, Tag: combat.TagPhysical})
	runUntil(e, 40, func() bool { return e.State() == PatternCooldown })

	if len(h.shots.specs) != 5 {
		t.Fatalf("expected 5 shots, got %d", len(h.shots.specs))
	}
	if got := angleDeg(h.shots.specs[0].Direction); math.Abs(got-60) > 1e-9 {
		t.Fatalf("first fan angle %v, want 60", got)
	}
	if got := angleDeg(h.shots.specs[2].Direction); math.Abs(got-90) > 1e-9 {
		t.Fatalf("center fan angle %v, want 90", got)
	}
}
