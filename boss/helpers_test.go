package boss

import (
	"io"
	"log/slog"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/combat"
)

const tickDT = 0.25

type fakeBody struct {
	pos cp.Vector
}

func (b *fakeBody) Position() cp.Vector       { return b.pos }
func (b *fakeBody) SetPosition(pos cp.Vector) { b.pos = pos }

type fakeTarget struct {
	pos     cp.Vector
	ok      bool
	pursued int
}

func (t *fakeTarget) Target() (cp.Vector, bool) { return t.pos, t.ok }
func (t *fakeTarget) Pursue(float64)            { t.pursued++ }

type fakeTelegraph struct {
	origin    cp.Vector
	dir       cp.Vector
	alphas    []float64
	destroyed int
}

func (t *fakeTelegraph) SetOrigin(pos cp.Vector)    { t.origin = pos }
func (t *fakeTelegraph) SetDirection(dir cp.Vector) { t.dir = dir }
func (t *fakeTelegraph) SetAlpha(alpha float64)     { t.alphas = append(t.alphas, alpha) }
func (t *fakeTelegraph) Destroy()                   { t.destroyed++ }

type fakeTelegraphs struct {
	created []*fakeTelegraph
}

func (f *fakeTelegraphs) CreateTelegraph(origin, dir cp.Vector) Telegraph {
	t := &fakeTelegraph{origin: origin, dir: dir}
	f.created = append(f.created, t)
	return t
}

func (f *fakeTelegraphs) live() int {
	n := 0
	for _, t := range f.created {
		if t.destroyed == 0 {
			n++
		}
	}
	return n
}

type fakeProjectiles struct {
	specs []ProjectileSpec
}

func (f *fakeProjectiles) SpawnProjectile(spec ProjectileSpec) { f.specs = append(f.specs, spec) }

type fakeMinions struct {
	reqs []MinionSpawnRequest
}

func (f *fakeMinions) SpawnMinion(req MinionSpawnRequest) { f.reqs = append(f.reqs, req) }

// stubRand returns intN(n) for IntN and a fixed value for Float64.
type stubRand struct {
	intN func(n int) int
	f    float64
}

func (s stubRand) IntN(n int) int {
	if s.intN == nil {
		return 0
	}
	return s.intN(n)
}

func (s stubRand) Float64() float64 { return s.f }

// fixedInt makes every IntN return v, capped to the valid range.
func fixedInt(v int) stubRand {
	return stubRand{intN: func(n int) int { return min(v, n-1) }, f: 0.5}
}

type harness struct {
	body       *fakeBody
	target     *fakeTarget
	telegraphs *fakeTelegraphs
	shots      *fakeProjectiles
	minions    *fakeMinions
}

func newHarness() *harness {
	return &harness{
		body:       &fakeBody{},
		target:     &fakeTarget{pos: cp.Vector{X: 100}, ok: true},
		telegraphs: &fakeTelegraphs{},
		shots:      &fakeProjectiles{},
		minions:    &fakeMinions{},
	}
}

func (h *harness) deps() Collaborators {
	return Collaborators{
		Target:      h.target,
		Body:        h.body,
		Projectiles: h.shots,
		Minions:     h.minions,
		Telegraphs:  h.telegraphs,
	}
}

func testConfig() Config {
	return Config{
		ID:              "test_boss",
		MaxHealth:       1000,
		Damage:          10,
		Speed:           50,
		DetectionRange:  500,
		PhaseThresholds: []float64{0.7, 0.4},
		Weights:         PatternWeights{Charge: 1, Projectile: 1, Summon: 1},
		Cooldown:        CooldownRange{Min: 1, Max: 1},
		Charge: ChargeConfig{
			PrepareTime:    1,
			Speed:          300,
			Duration:       0.5,
			StunTime:       0.5,
			Phase1Count:    1,
			Phase2CountMin: 2,
			Phase2CountMax: 4,
		},
		Projectile: ProjectileConfig{
			Speed:            200,
			Damage:           5,
			Tag:              combat.TagFire,
			Phase1BurstCount: 3,
			BurstInterval:    0.25,
			SingleShotDelay:  0.75,
			FanCount:         5,
			FanAngle:         60,
			CircleCount:      8,
		},
		Summon: SummonConfig{
			Radius: 100,
			Phases: []SummonPhase{
				{CastTime: 1, Count: 2, Pool: []string{"imp"}},
				{CastTime: 1, Count: 3, Pool: []string{"imp", "brute"}},
			},
		},
	}
}

func newTestEncounter(t *testing.T, cfg Config, deps Collaborators, rng Rand) *Encounter {
	t.Helper()
	e, err := NewEncounter(cfg, deps, WithRand(rng), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("NewEncounter: %v", err)
	}
	return e
}

// runUntil ticks e until done reports true or maxTicks is reached.
func runUntil(e *Encounter, maxTicks int, done func() bool) bool {
	for range maxTicks {
		e.Update(tickDT)
		if done() {
			return true
		}
	}
	return false
}
