package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// AutoPilotSystem plays the player for headless runs: it holds Range from
// the nearest boss while circling it and keeps firing at it.
type AutoPilotSystem struct{}

func NewAutoPilotSystem() *AutoPilotSystem {
	return &AutoPilotSystem{}
}

func (s *AutoPilotSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.AutoPilotComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, ap *component.AutoPilot, in *component.Input, pb *component.PhysicsBody) {
			pos := pb.Body.Position()
			target, ok := nearestBoss(w, pos)
			if !ok {
				*in = component.Input{}
				return
			}

			delta := pos.Sub(target)
			dist := delta.Length()
			if dist == 0 {
				delta, dist = cp.Vector{X: 1}, 1
			}
			radial := delta.Mult(1 / dist)
			tangent := radial.Perp().Mult(ap.Orbit)
			// Push outward when too close, inward when too far.
			correction := (ap.Range - dist) / max(ap.Range, 1)

			in.Move = tangent.Add(radial.Mult(correction * 2))
			in.Aim = target
			in.Fire = true
		})
}

func nearestBoss(w *ecs.World, from cp.Vector) (cp.Vector, bool) {
	var best cp.Vector
	bestDist, found := 0.0, false
	ecs.ForEach2(w, component.BossComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, b *component.Boss, pb *component.PhysicsBody) {
			if b.Encounter.Defeated() {
				return
			}
			pos := pb.Body.Position()
			if d := pos.Distance(from); !found || d < bestDist {
				best, bestDist, found = pos, d, true
			}
		})
	return best, found
}
