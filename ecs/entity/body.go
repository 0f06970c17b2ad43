package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// spawnBody creates an entity with a kinematic body at pos and a tint.
func spawnBody(w *ecs.World, pos cp.Vector, radius float64, clamp bool, tint color.Color) (ecs.Entity, *cp.Body, error) {
	e := ecs.CreateEntity(w)
	body := w.PhysicsWorld().Attach(e, pos)
	if body == nil {
		body = cp.NewKinematicBody()
		body.SetPosition(pos)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:   body,
		Radius: radius,
		Clamp:  clamp,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, nil, err
	}
	if tint != nil {
		_ = ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{Color: tint})
	}
	return e, body, nil
}

// Position returns the body position of e.
func Position(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return cp.Vector{}, false
	}
	return pb.Body.Position(), true
}

// Player returns the first live player entity and its position.
func Player(w *ecs.World) (ecs.Entity, cp.Vector, bool) {
	e, _, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return 0, cp.Vector{}, false
	}
	pos, ok := Position(w, e)
	return e, pos, ok
}

// bodyBinding exposes an entity's body to the encounter, keeping it inside
// the arena.
type bodyBinding struct {
	w      *ecs.World
	body   *cp.Body
	radius float64
}

func (b bodyBinding) Position() cp.Vector {
	return b.body.Position()
}

func (b bodyBinding) SetPosition(pos cp.Vector) {
	b.body.SetPosition(b.w.PhysicsWorld().Clamp(pos, b.radius))
}
