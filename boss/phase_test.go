package boss

import (
	"testing"

	"github.com/milk9111/bossfight/combat"
	"pgregory.net/rapid"
)

func TestComputePhase(t *testing.T) {
	thresholds := []float64{0.7, 0.4}
	cases := []struct {
		name    string
		pct     float64
		current int
		max     int
		want    int
	}{
		{"full_health", 1.0, 1, 3, 1},
		{"first_threshold", 0.65, 1, 3, 2},
		{"exactly_on_threshold", 0.7, 1, 3, 2},
		{"skips_to_deepest", 0.35, 1, 3, 3},
		{"capped_by_max_phases", 0.35, 1, 2, 1},
		{"never_decreases", 0.9, 3, 3, 3},
		{"current_clamped", 1.0, 0, 3, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ComputePhase(c.pct, thresholds, c.current, c.max); got != c.want {
				t.Fatalf("ComputePhase(%v, %v, %d, %d) = %d, want %d", c.pct, thresholds, c.current, c.max, got, c.want)
			}
		})
	}
}

func TestPhaseScenarioThroughDamage(t *testing.T) {
	h := newHarness()
	h.target.ok = false
	e := newTestEncounter(t, testConfig(), h.deps(), fixedInt(0))

	var changes []int
	e.Events().OnPhaseChanged(func(p int) { changes = append(changes, p) })

	steps := []struct {
		damage float64
		want   int
	}{
		{0, 1},
		{350, 2},
		{300, 3},
	}
	for _, s := range steps {
		e.TakeDamage(combat.Hit{Amount: s.damage, Tag: combat.TagPhysical})
		e.Update(tickDT)
		if e.Phase() != s.want {
			t.Fatalf("health %v: phase = %d, want %d", e.Health(), e.Phase(), s.want)
		}
	}
	if len(changes) != 2 || changes[0] != 2 || changes[1] != 3 {
		t.Fatalf("unexpected phase notifications %v", changes)
	}
}

func TestPhaseProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 5).Draw(t, "thresholds")
		thresholds := make([]float64, n)
		prev := 1.0
		for i := range thresholds {
			prev = rapid.Float64Range(prev*0.1, prev*0.95).Draw(t, "threshold")
			thresholds[i] = prev
		}
		maxPhases := n + 1

		hi := rapid.Float64Range(0, 1).Draw(t, "hi")
		lo := rapid.Float64Range(0, hi).Draw(t, "lo")
		pHi := ComputePhase(hi, thresholds, 1, maxPhases)
		pLo := ComputePhase(lo, thresholds, 1, maxPhases)
		if pLo < pHi {
			t.Fatalf("phase decreased as health fell: %v->%d, %v->%d", hi, pHi, lo, pLo)
		}
		if pLo < 1 || pLo > maxPhases || pHi < 1 || pHi > maxPhases {
			t.Fatalf("phase out of bounds: %d %d (max %d)", pHi, pLo, maxPhases)
		}

		current := 1
		for _, pct := range rapid.SliceOfN(rapid.Float64Range(0, 1), 1, 20).Draw(t, "health") {
			next := ComputePhase(pct, thresholds, current, maxPhases)
			if next < current {
				t.Fatalf("phase went from %d to %d at %v", current, next, pct)
			}
			current = next
		}
	})
}

func TestResetIsOnlyWayPhaseDecreases(t *testing.T) {
	h := newHarness()
	h.target.ok = false
	e := newTestEncounter(t, testConfig(), h.deps(), fixedInt(0))

	e.TakeDamage(combat.Hit{Amount: 700, Tag: combat.TagPhysical})
	e.Update(tickDT)
	if e.Phase() != 3 {
		t.Fatalf("expected phase 3, got %d", e.Phase())
	}

	e.Combatant().Heal(600)
	e.Update(tickDT)
	if e.Phase() != 3 {
		t.Fatalf("healing lowered phase to %d", e.Phase())
	}

	e.Reset()
	if e.Phase() != 1 || e.Health() != 1000 || e.State() != Idle {
		t.Fatalf("reset left phase=%d health=%v state=%v", e.Phase(), e.Health(), e.State())
	}
}
