package component

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to its kinematic Chipmunk body.
type PhysicsBody struct {
	Body   *cp.Body
	Radius float64
	// Clamp keeps the body inside the arena bounds after each step.
	Clamp bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
