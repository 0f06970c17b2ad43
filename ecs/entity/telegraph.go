package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
	"golang.org/x/image/colornames"
)

// telegraphFactory places charge warnings into the world as entities.
type telegraphFactory struct {
	w      *ecs.World
	spec   prefabs.TelegraphSpec
	length float64
}

func (f telegraphFactory) CreateTelegraph(origin, dir cp.Vector) boss.Telegraph {
	e := ecs.CreateEntity(f.w)
	length := f.spec.Length
	if length <= 0 {
		length = f.length
	}
	_ = ecs.Add(f.w, e, component.TelegraphComponent.Kind(), &component.Telegraph{
		Origin:    origin,
		Direction: dir,
		Length:    length,
		Width:     f.spec.Width,
		Color:     f.spec.Color.Or(colornames.Red),
	})
	return telegraphHandle{w: f.w, e: e}
}

type telegraphHandle struct {
	w *ecs.World
	e ecs.Entity
}

func (h telegraphHandle) get() *component.Telegraph {
	t, _ := ecs.Get(h.w, h.e, component.TelegraphComponent.Kind())
	return t
}

func (h telegraphHandle) SetOrigin(pos cp.Vector) {
	if t := h.get(); t != nil {
		t.Origin = pos
	}
}

func (h telegraphHandle) SetDirection(dir cp.Vector) {
	if t := h.get(); t != nil {
		t.Direction = dir
	}
}

func (h telegraphHandle) SetAlpha(alpha float64) {
	if t := h.get(); t != nil {
		t.Alpha = alpha
	}
}

func (h telegraphHandle) Destroy() {
	ecs.DestroyEntity(h.w, h.e)
}
