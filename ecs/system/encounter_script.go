package system

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
	"github.com/milk9111/bossfight/prefabs"
)

const encounterDispatchScript = `
if __kind != "" {
	on_event(__engine, __kind, __arg)
}
`

// ScriptLoader returns the source of an encounter script.
type ScriptLoader func(path string) ([]byte, error)

// EncounterScriptSystem forwards boss events to tengo encounter scripts.
// A script defines on_event(engine, kind, arg) and may read the encounter
// and rewrite its pattern weights through engine.
type EncounterScriptSystem struct {
	log     *slog.Logger
	load    ScriptLoader
	cursor  uint64
	scripts map[ecs.Entity]*encounterScript
}

type encounterScript struct {
	path      string
	encounter *boss.Encounter
	compiled  *tengo.Compiled
	state     *tengo.Map
}

func NewEncounterScriptSystem(log *slog.Logger, load ScriptLoader) *EncounterScriptSystem {
	if log == nil {
		log = slog.Default()
	}
	if load == nil {
		load = prefabs.LoadScript
	}
	return &EncounterScriptSystem{
		log:     log,
		load:    load,
		scripts: make(map[ecs.Entity]*encounterScript),
	}
}

// Reload drops compiled copies of the named script so they are rebuilt on
// the next update. Script state is reset.
func (s *EncounterScriptSystem) Reload(name string) {
	for e, rt := range s.scripts {
		if path.Base(rt.path) == path.Base(filepath.ToSlash(name)) {
			delete(s.scripts, e)
		}
	}
}

func (s *EncounterScriptSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.EncounterScriptComponent.Kind(), component.BossComponent.Kind(),
		func(e ecs.Entity, sc *component.EncounterScript, b *component.Boss) {
			if rt, ok := s.scripts[e]; ok && rt.path == sc.Path {
				return
			}
			rt, err := s.compile(sc.Path, b.Encounter)
			if err != nil {
				s.log.Error("encounter script compile", "path", sc.Path, "entity", e.String(), "err", err)
				rt = &encounterScript{path: sc.Path, encounter: b.Encounter}
			}
			s.scripts[e] = rt
		})

	var events []ecs.Event
	events, s.cursor = w.Events().Since(s.cursor)
	for _, ev := range events {
		rt, ok := s.scripts[ev.Entity]
		if !ok || rt.compiled == nil {
			continue
		}
		kind, arg, ok := scriptEvent(ev)
		if !ok {
			continue
		}
		if err := rt.dispatch(w, ev.Entity, s.log, kind, arg); err != nil {
			s.log.Error("encounter script", "path", rt.path, "event", kind, "err", err)
		}
	}

	for e := range s.scripts {
		if !ecs.IsAlive(w, e) {
			delete(s.scripts, e)
		}
	}
}

func (s *EncounterScriptSystem) compile(path string, enc *boss.Encounter) (*encounterScript, error) {
	src, err := s.load(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + encounterDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__kind", "")
	_ = script.Add("__arg", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &encounterScript{
		path:      path,
		encounter: enc,
		compiled:  compiled,
		state:     &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// scriptEvent maps a world event to the kind and argument scripts see.
func scriptEvent(ev ecs.Event) (string, any, bool) {
	switch ev.Type {
	case ecs.EventBossSpawned:
		return "spawned", nil, true
	case ecs.EventBossDefeated:
		return "defeated", nil, true
	case ecs.EventPhaseChanged:
		return "phase_changed", ev.Data, true
	case ecs.EventHealthChanged:
		return "health_changed", ev.Data, true
	case ecs.EventStateChanged:
		if change, ok := ev.Data.(entity.StateChange); ok {
			return "state_changed", change.To.String(), true
		}
	case ecs.EventMinionSpawned:
		return "minion_spawned", nil, true
	}
	return "", nil, false
}

func (rt *encounterScript) dispatch(w *ecs.World, e ecs.Entity, log *slog.Logger, kind string, arg any) error {
	if err := rt.compiled.Set("__engine", rt.engine(w, e, log)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__kind", kind); err != nil {
		return err
	}
	if err := rt.compiled.Set("__arg", arg); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (rt *encounterScript) engine(w *ecs.World, e ecs.Entity, log *slog.Logger) *tengo.ImmutableMap {
	enc := rt.encounter
	values := map[string]tengo.Object{
		"state": rt.state,
	}

	values["print"] = &tengo.UserFunction{Name: "print", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Info("encounter script", "path", rt.path, "msg", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	values["phase"] = &tengo.UserFunction{Name: "phase", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(enc.Phase())}, nil
	}}

	values["health_pct"] = &tengo.UserFunction{Name: "health_pct", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: enc.HealthPercentage()}, nil
	}}

	values["boss_state"] = &tengo.UserFunction{Name: "boss_state", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: enc.State().String()}, nil
	}}

	values["weights"] = &tengo.UserFunction{Name: "weights", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pw := enc.PatternWeights()
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"charge":     &tengo.Int{Value: int64(pw.Charge)},
			"projectile": &tengo.Int{Value: int64(pw.Projectile)},
			"summon":     &tengo.Int{Value: int64(pw.Summon)},
		}}, nil
	}}

	values["set_weights"] = &tengo.UserFunction{Name: "set_weights", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		var n [3]int
		for i, a := range args {
			v, ok := tengo.ToInt(a)
			if !ok || v < 0 {
				return nil, fmt.Errorf("set_weights: argument %d must be a non-negative int, got %s", i, a.TypeName())
			}
			n[i] = v
		}
		enc.SetPatternWeights(boss.PatternWeights{Charge: n[0], Projectile: n[1], Summon: n[2]})
		return tengo.TrueValue, nil
	}}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		w.Events().Push(ecs.Event{Type: ecs.EventScript, Entity: e, Data: name})
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
