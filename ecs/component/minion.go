package component

// Minion is a summoned add that chases the player and hurts on contact.
type Minion struct {
	Type            string
	ContactDamage   float64
	ContactCooldown float64
	// Cooldown counts down to the next allowed contact hit.
	Cooldown float64
}

var MinionComponent = NewComponent[Minion]()

// Pursuer steers its body toward the player at Speed.
type Pursuer struct {
	Speed float64
}

var PursuerComponent = NewComponent[Pursuer]()
