package ecs

import (
	"errors"
	"slices"
	"testing"

	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs/component"
)

func intPtr(i int) *int          { return &i }
func stringPtr(s string) *string { return &s }

// mustAdd attaches v under k or fails the test.
func mustAdd[T any](t *testing.T, w *World, e Entity, k component.ComponentKind[T], v T) {
	t.Helper()
	if err := Add(w, e, k, &v); err != nil {
		t.Fatalf("add %s to %s: %v", k, e, err)
	}
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
	}{
		{"single", 1, []int{0}},
		{"destroy_middle", 3, []int{1}},
		{"destroy_none", 2, nil},
		{"destroy_all", 4, []int{3, 0, 2, 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, c.create)
			for i := range ents {
				ents[i] = CreateEntity(w)
				if !ents[i].Valid() {
					t.Fatalf("entity %d is not valid", i)
				}
			}
			for _, i := range c.destroy {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("destroy %s reported false", ents[i])
				}
				if IsAlive(w, ents[i]) {
					t.Fatalf("%s alive after destroy", ents[i])
				}
			}
			if got, want := len(Entities(w)), c.create-len(c.destroy); got != want {
				t.Fatalf("expected %d live entities, got %d", want, got)
			}
		})
	}
}

func TestCombatantComponents(t *testing.T) {
	w := NewWorld()
	health := component.NewComponentKind[combat.Combatant]()
	status := component.NewComponentKind[combat.StatusEffects]()

	player := CreateEntity(w)
	minion := CreateEntity(w)
	mustAdd(t, w, player, health, *combat.NewCombatant(100, 5, 100, combat.FactionPlayer))
	mustAdd(t, w, minion, health, *combat.NewCombatant(30, 8, 60, combat.FactionEnemy))
	mustAdd(t, w, minion, status, combat.StatusEffects{})

	c, ok := Get(w, player, health)
	if !ok || c.MaxHealth != 100 {
		t.Fatalf("player combatant = %+v ok=%v", c, ok)
	}
	c.ApplyDamage(25)
	if again, _ := Get(w, player, health); again.Health != 75 {
		t.Fatal("Get should return the stored pointer")
	}

	if Has(w, player, status) || !Has(w, minion, status) {
		t.Fatal("status attached to the wrong entity")
	}
	if Count(w, health) != 2 {
		t.Fatalf("expected 2 combatants, got %d", Count(w, health))
	}

	if !Remove(w, minion, health) || Remove(w, minion, health) {
		t.Fatal("Remove should succeed once")
	}
	DestroyEntity(w, minion)
	if Count(w, status) != 0 {
		t.Fatal("destroy should clear every store")
	}
}

func TestForEachJoins(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	// all four kinds only on full; dead had all four before it was destroyed.
	lone := CreateEntity(w)
	full := CreateEntity(w)
	three := CreateEntity(w)
	dead := CreateEntity(w)
	mustAdd(t, w, lone, ka, 1)
	for _, k := range []component.ComponentKind[int]{ka, kb, kc, kd} {
		mustAdd(t, w, full, k, 2)
		mustAdd(t, w, dead, k, 4)
	}
	for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
		mustAdd(t, w, three, k, 3)
	}
	DestroyEntity(w, dead)

	collect := func(run func(add func(Entity))) []Entity {
		var got []Entity
		run(func(e Entity) { got = append(got, e) })
		slices.SortFunc(got, func(a, b Entity) int { return int(a.id()) - int(b.id()) })
		return got
	}

	cases := []struct {
		name string
		got  []Entity
		want []Entity
	}{
		{"one", collect(func(add func(Entity)) {
			ForEach(w, ka, func(e Entity, _ *int) { add(e) })
		}), []Entity{lone, full, three}},
		{"two", collect(func(add func(Entity)) {
			ForEach2(w, ka, kb, func(e Entity, _, _ *int) { add(e) })
		}), []Entity{full, three}},
		{"three", collect(func(add func(Entity)) {
			ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { add(e) })
		}), []Entity{full, three}},
		{"four", collect(func(add func(Entity)) {
			ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { add(e) })
		}), []Entity{full}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !slices.Equal(c.got, c.want) {
				t.Fatalf("expected %v, got %v", c.want, c.got)
			}
		})
	}
}

func TestForEachMissingStore(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	never := component.NewComponentKind[string]()
	mustAdd(t, w, CreateEntity(w), ka, 1)

	calls := 0
	ForEach(w, never, func(Entity, *string) { calls++ })
	ForEach2(w, ka, never, func(Entity, *int, *string) { calls++ })
	ForEach4(w, ka, ka, ka, never, func(Entity, *int, *int, *int, *string) { calls++ })
	if calls != 0 {
		t.Fatalf("expected no calls, got %d", calls)
	}
	if Count(w, never) != 0 {
		t.Fatal("missing store should count zero")
	}
}

func TestStaleHandles(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("destroy failed")
	}
	if DestroyEntity(w, old) {
		t.Fatal("second destroy should report false")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() || reused == old {
		t.Fatalf("expected slot reuse with a new generation, old=%s new=%s", old, reused)
	}
	if Has(w, reused, k) {
		t.Fatal("reused slot should not inherit components")
	}
	if err := Add(w, old, k, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
	if err := Add(w, reused, k, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, reused, component.ComponentKind[int]{}, intPtr(3)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	var ents []Entity
	for i := range 5 {
		e := CreateEntity(w)
		ents = append(ents, e)
		if err := Add(w, e, k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, k, func(e Entity, v *int) {
		visited++
		if *v == 0 {
			DestroyEntity(w, ents[4])
		}
	})
	if visited != 4 {
		t.Fatalf("expected destroyed entity to be skipped, visited %d", visited)
	}
	if Count(w, k) != 4 || len(Entities(w)) != 4 {
		t.Fatalf("count=%d entities=%d", Count(w, k), len(Entities(w)))
	}
}

func TestForEach2AndFirst(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	if _, _, ok := First(w, ka); ok {
		t.Fatal("First on an empty store should report false")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("x"))

	var got []Entity
	ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
		if *a != 2 || *b != "x" {
			t.Fatalf("unexpected values %d %q", *a, *b)
		}
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2, got %v", got)
	}

	e, v, ok := First(w, ka)
	if !ok || e != e1 || *v != 1 {
		t.Fatalf("First = %s %v %v", e, v, ok)
	}
}

func TestEntityHandleFormat(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	again := CreateEntity(w)

	if first.String() != "1v0" || again.String() != "1v1" {
		t.Fatalf("handles %s then %s, want 1v0 then 1v1", first, again)
	}
	if again.id() != first.id() || again.generation() != first.generation()+1 {
		t.Fatalf("recycled handle %s from %s", again, first)
	}
	if Entity(0).Valid() || !again.Valid() {
		t.Fatal("only the zero handle is invalid")
	}
}
