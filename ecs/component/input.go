package component

import "github.com/jakecoffman/cp"

// Input stores per-frame intent for an entity, filled by the keyboard or the
// autopilot.
type Input struct {
	Move cp.Vector
	// Aim is the world point being aimed at.
	Aim  cp.Vector
	Fire bool
}

var InputComponent = NewComponent[Input]()
