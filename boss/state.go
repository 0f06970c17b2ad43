package boss

import "fmt"

// State is one node of the encounter's state machine.
type State int

const (
	Idle State = iota
	PatternCooldown
	ChargePrepare
	Charging
	ChargeStunned
	ShootingPrepare
	Shooting
	SummonPrepare
	Summoning
	SummonComplete

	stateCount
)

var stateNames = [stateCount]string{
	Idle:            "idle",
	PatternCooldown: "pattern_cooldown",
	ChargePrepare:   "charge_prepare",
	Charging:        "charging",
	ChargeStunned:   "charge_stunned",
	ShootingPrepare: "shooting_prepare",
	Shooting:        "shooting",
	SummonPrepare:   "summon_prepare",
	Summoning:       "summoning",
	SummonComplete:  "summon_complete",
}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Pattern is an attack sequence the selector can start from Idle.
type Pattern int

const (
	PatternCharge Pattern = iota
	PatternProjectile
	PatternSummon
)

func (p Pattern) String() string {
	switch p {
	case PatternCharge:
		return "charge"
	case PatternProjectile:
		return "projectile"
	case PatternSummon:
		return "summon"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}

// PrepareState is the state a pattern starts in.
func (p Pattern) PrepareState() State {
	switch p {
	case PatternProjectile:
		return ShootingPrepare
	case PatternSummon:
		return SummonPrepare
	default:
		return ChargePrepare
	}
}

// stateHandler is one row of the encounter's dispatch table.
type stateHandler struct {
	enter func(from State)
	tick  func(dt float64)
}
