package component

import "github.com/milk9111/bossfight/combat"

// CombatantComponent holds health for players and minions. Bosses keep theirs
// inside the encounter.
var CombatantComponent = NewComponent[combat.Combatant]()

var StatusComponent = NewComponent[combat.StatusEffects]()
