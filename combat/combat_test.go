package combat

import "testing"

func TestCombatantApplyDamage(t *testing.T) {
	cases := []struct {
		name        string
		health      float64
		amount      float64
		invuln      float64
		wantApplied float64
		wantHealth  float64
		wantDeath   bool
	}{
		{"partial", 100, 30, 0, 30, 70, false},
		{"clamps_at_zero", 20, 50, 0, 20, 0, true},
		{"negative_ignored", 100, -5, 0, 0, 100, false},
		{"invulnerable", 100, 30, 1, 0, 100, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cb := NewCombatant(100, 10, 5, FactionPlayer)
			cb.Health = c.health
			cb.Invulnerable = c.invuln
			died := false
			cb.OnDeath = func(*Combatant) { died = true }

			if got := cb.ApplyDamage(c.amount); got != c.wantApplied {
				t.Fatalf("applied = %v, want %v", got, c.wantApplied)
			}
			if cb.Health != c.wantHealth {
				t.Fatalf("health = %v, want %v", cb.Health, c.wantHealth)
			}
			if died != c.wantDeath {
				t.Fatalf("death callback = %v, want %v", died, c.wantDeath)
			}
		})
	}
}

func TestCombatantDeadIgnoresDamageAndHeal(t *testing.T) {
	cb := NewCombatant(10, 0, 0, FactionEnemy)
	cb.ApplyDamage(10)
	if cb.Alive() {
		t.Fatal("expected dead combatant")
	}
	if got := cb.ApplyDamage(5); got != 0 {
		t.Fatalf("expected no damage on dead combatant, got %v", got)
	}
	cb.Heal(5)
	if cb.Health != 0 {
		t.Fatalf("heal should not revive, health=%v", cb.Health)
	}
	cb.Reset()
	if cb.Health != 10 {
		t.Fatalf("reset should restore max health, got %v", cb.Health)
	}
}

func TestCombatantInvulnerabilityTicksDown(t *testing.T) {
	cb := NewCombatant(10, 0, 0, FactionPlayer)
	cb.StartInvulnerability(0.5)
	cb.Tick(0.25)
	if cb.ApplyDamage(1) != 0 {
		t.Fatal("expected damage blocked while invulnerable")
	}
	cb.Tick(0.5)
	if cb.ApplyDamage(1) != 1 {
		t.Fatal("expected damage after invulnerability expired")
	}
}

func TestCanHit(t *testing.T) {
	if CanHit(FactionEnemy, FactionEnemy) {
		t.Fatal("enemies should not hit each other")
	}
	if !CanHit(FactionPlayer, FactionEnemy) || !CanHit(FactionEnemy, FactionPlayer) {
		t.Fatal("opposing factions should hit")
	}
	if !CanHit(FactionNeutral, FactionPlayer) {
		t.Fatal("neutral attacks hit everyone")
	}
}

func TestStatusEffectsMultiplier(t *testing.T) {
	s := NewStatusEffects(map[Tag]float64{TagFire: 0.5})
	if got := s.DamageMultiplier(TagFire); got != 0.5 {
		t.Fatalf("base fire multiplier = %v, want 0.5", got)
	}
	if got := s.DamageMultiplier(TagIce); got != 1 {
		t.Fatalf("default multiplier = %v, want 1", got)
	}

	s.ApplyStatus(StatusEffect{Name: "burning", Duration: 1, Multipliers: map[Tag]float64{TagFire: 2}})
	if got := s.DamageMultiplier(TagFire); got != 1 {
		t.Fatalf("burning fire multiplier = %v, want 1", got)
	}

	s.Tick(0.6)
	s.ApplyStatus(StatusEffect{Name: "burning", Duration: 1, Multipliers: map[Tag]float64{TagFire: 2}})
	s.Tick(0.6)
	if !s.Has("burning") {
		t.Fatal("reapplied effect should have refreshed duration")
	}
	if len(s.Active()) != 1 {
		t.Fatalf("expected one active effect, got %v", s.Active())
	}

	s.Tick(0.5)
	if s.Has("burning") {
		t.Fatal("expected effect to expire")
	}
	if got := s.DamageMultiplier(TagFire); got != 0.5 {
		t.Fatalf("multiplier after expiry = %v, want 0.5", got)
	}
}

func TestStatusEffectsIgnoresInvalid(t *testing.T) {
	s := NewStatusEffects(nil)
	s.ApplyStatus(StatusEffect{Name: "", Duration: 1})
	s.ApplyStatus(StatusEffect{Name: "chill", Duration: 0})
	if len(s.Active()) != 0 {
		t.Fatalf("expected no active effects, got %v", s.Active())
	}

	var nilStatus *StatusEffects
	if nilStatus.DamageMultiplier(TagFire) != 1 {
		t.Fatal("nil tracker should report neutral multiplier")
	}
	nilStatus.ApplyStatus(StatusEffect{Name: "x", Duration: 1})
	nilStatus.Tick(1)
}
