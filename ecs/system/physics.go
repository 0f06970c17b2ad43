package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// PhysicsSystem steps the Chipmunk space and keeps clamped bodies inside the
// arena.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	pw.Step(dt)

	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody) {
		if !pb.Clamp || pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		if clamped := pw.Clamp(pos, pb.Radius); clamped != pos {
			pb.Body.SetPosition(clamped)
		}
	})
}
