package component

import "github.com/jakecoffman/cp"

// ArenaNode marks a named region of the arena. The "summon" group bounds
// where bosses place minions.
type ArenaNode struct {
	Group  string
	Bounds cp.BB
	Active bool
}

const ArenaGroupSummon = "summon"

var ArenaNodeComponent = NewComponent[ArenaNode]()
