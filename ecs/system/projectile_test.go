package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
)

func TestProjectileHits(t *testing.T) {
	cases := []struct {
		name    string
		faction combat.Faction
		at      cp.Vector
		check   func(t *testing.T, w *ecs.World, player ecs.Entity, enc *boss.Encounter)
	}{
		{
			name:    "player_shot_hits_boss",
			faction: combat.FactionPlayer,
			at:      cp.Vector{X: 500, Y: 500},
			check: func(t *testing.T, _ *ecs.World, _ ecs.Entity, enc *boss.Encounter) {
				if enc.Health() != 90 {
					t.Fatalf("boss health = %v, want 90", enc.Health())
				}
			},
		},
		{
			name:    "enemy_shot_hits_player",
			faction: combat.FactionEnemy,
			at:      cp.Vector{X: 100, Y: 100},
			check: func(t *testing.T, w *ecs.World, player ecs.Entity, _ *boss.Encounter) {
				c, _ := ecs.Get(w, player, component.CombatantComponent.Kind())
				if c.Health != 90 || c.Invulnerable <= 0 {
					t.Fatalf("player health=%v invulnerable=%v", c.Health, c.Invulnerable)
				}
			},
		},
		{
			name:    "enemy_shot_ignores_boss",
			faction: combat.FactionEnemy,
			at:      cp.Vector{X: 500, Y: 500},
			check: func(t *testing.T, _ *ecs.World, _ ecs.Entity, enc *boss.Encounter) {
				if enc.Health() != 100 {
					t.Fatalf("friendly fire damaged the boss: %v", enc.Health())
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := testArena(t)
			player := testPlayer(t, w, cp.Vector{X: 100, Y: 100})
			_, enc := testBoss(t, w, passiveBoss(), cp.Vector{X: 500, Y: 500})

			shot, err := entity.SpawnProjectile(w, entity.Shot{
				Position:  c.at,
				Direction: cp.Vector{X: 1},
				Speed:     1,
				Hit:       component.Projectile{Damage: 10, Tag: combat.TagPhysical, Faction: c.faction, Radius: 2},
			})
			if err != nil {
				t.Fatal(err)
			}

			NewProjectileSystem().Update(w, tick)
			c.check(t, w, player, enc)
			if hit := !ecs.IsAlive(w, shot); hit == (c.name == "enemy_shot_ignores_boss") {
				t.Fatalf("projectile alive=%v after %s", !hit, c.name)
			}
		})
	}
}

func TestProjectileCulledOutsideArena(t *testing.T) {
	w := testArena(t)
	shot, _ := entity.SpawnProjectile(w, entity.Shot{
		Position:  cp.Vector{X: -100, Y: 10},
		Direction: cp.Vector{X: -1},
		Speed:     10,
		Hit:       component.Projectile{Damage: 1, Faction: combat.FactionEnemy},
	})
	NewProjectileSystem().Update(w, tick)
	if ecs.IsAlive(w, shot) {
		t.Fatal("projectile outside the arena should be culled")
	}
}

func TestPlayerStatusShotAppliesToBoss(t *testing.T) {
	w := testArena(t)
	testPlayer(t, w, cp.Vector{X: 100, Y: 100})
	bossEnt, enc := testBoss(t, w, passiveBoss(), cp.Vector{X: 500, Y: 500})

	burn := &combat.StatusEffect{Name: "burn", Duration: 1, Multipliers: map[combat.Tag]float64{combat.TagFire: 2}}
	for range 2 {
		_, _ = entity.SpawnProjectile(w, entity.Shot{
			Position:  cp.Vector{X: 500, Y: 500},
			Direction: cp.Vector{X: 1},
			Hit:       component.Projectile{Damage: 10, Tag: combat.TagFire, Faction: combat.FactionPlayer, Status: burn},
		})
		NewProjectileSystem().Update(w, tick)
	}

	// first hit lands before the burn is applied, the second is doubled
	if enc.Health() != 70 {
		t.Fatalf("boss health = %v, want 70", enc.Health())
	}
	st, ok := ecs.Get(w, bossEnt, component.StatusComponent.Kind())
	if !ok || !st.Has("burn") {
		t.Fatal("burn should be active on the boss")
	}

	NewStatusSystem().Update(w, 1)
	if st.Has("burn") {
		t.Fatal("burn should expire after its duration")
	}
}

func TestKnockbackRespectsSuperArmor(t *testing.T) {
	cases := []struct {
		name       string
		superArmor bool
		wantX      float64
	}{
		{"pushed", false, 508},
		{"super_armor", true, 500},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := testArena(t)
			cfg := passiveBoss()
			cfg.Resistance.SuperArmor = c.superArmor
			bossEnt, enc := testBoss(t, w, cfg, cp.Vector{X: 500, Y: 500})

			_, _ = entity.SpawnProjectile(w, entity.Shot{
				Position:  cp.Vector{X: 495, Y: 500},
				Direction: cp.Vector{X: 1},
				Speed:     100,
				Hit:       component.Projectile{Damage: 10, Faction: combat.FactionPlayer, Radius: 2, Knockback: 8},
			})
			NewProjectileSystem().Update(w, tick)

			if enc.Health() != 90 {
				t.Fatalf("boss health = %v, want 90", enc.Health())
			}
			pos, _ := entity.Position(w, bossEnt)
			if math.Abs(pos.X-c.wantX) > 1e-9 || pos.Y != 500 {
				t.Fatalf("boss at %v, want x=%v", pos, c.wantX)
			}
		})
	}
}
