package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/common"
)

// PhysicsWorld owns the Chipmunk space. The arena is top-down, so gravity is
// zero and every actor is a kinematic body driven by its velocity.
type PhysicsWorld struct {
	space  *cp.Space
	bounds cp.BB
	bodies map[Entity]*cp.Body
}

func NewPhysicsWorld(bounds cp.BB) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:  space,
		bounds: bounds,
		bodies: make(map[Entity]*cp.Body),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func (pw *PhysicsWorld) Bounds() cp.BB {
	if pw == nil {
		return cp.BB{}
	}
	return pw.bounds
}

// Attach creates a kinematic body for e at pos, replacing any existing one.
func (pw *PhysicsWorld) Attach(e Entity, pos cp.Vector) *cp.Body {
	if pw == nil {
		return nil
	}
	pw.Detach(e)
	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	pw.space.AddBody(body)
	pw.bodies[e] = body
	return body
}

func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	body, ok := pw.bodies[e]
	return body, ok
}

func (pw *PhysicsWorld) Detach(e Entity) {
	if pw == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	pw.space.RemoveBody(body)
	delete(pw.bodies, e)
}

func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// Step integrates every body by dt.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// Clamp keeps a circle of radius r inside the arena bounds.
func (pw *PhysicsWorld) Clamp(pos cp.Vector, r float64) cp.Vector {
	if pw == nil {
		return pos
	}
	b := pw.bounds
	if b.R-b.L < 2*r || b.T-b.B < 2*r {
		return pos
	}
	pos.X = common.Clamp(pos.X, b.L+r, b.R-r)
	pos.Y = common.Clamp(pos.Y, b.B+r, b.T-r)
	return pos
}

// Contains reports whether pos lies inside the bounds grown by margin.
func (pw *PhysicsWorld) Contains(pos cp.Vector, margin float64) bool {
	if pw == nil {
		return true
	}
	b := pw.bounds
	return pos.X >= b.L-margin && pos.X <= b.R+margin && pos.Y >= b.B-margin && pos.Y <= b.T+margin
}
