package component

import "github.com/milk9111/bossfight/prefabs"

type Player struct {
	MoveSpeed float64
	IFrames   float64
	Shot      prefabs.ShotSpec
	// ShotCooldown counts down to the next allowed shot.
	ShotCooldown float64
}

var PlayerComponent = NewComponent[Player]()

// AutoPilot drives a player without a keyboard: it circles the boss at Range
// and fires whenever the shot is ready.
type AutoPilot struct {
	Range float64
	// Orbit is +1 or -1 for the strafing direction.
	Orbit float64
}

var AutoPilotComponent = NewComponent[AutoPilot]()
