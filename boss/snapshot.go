package boss

import (
	"github.com/milk9111/bossfight/common"
	"gopkg.in/yaml.v3"
)

// Snapshot is a read-only view of an encounter's runtime state.
type Snapshot struct {
	ID             string         `yaml:"id"`
	Boss           string         `yaml:"boss"`
	State          State          `yaml:"state"`
	StateTimer     float64        `yaml:"state_timer"`
	Phase          int            `yaml:"phase"`
	MaxPhases      int            `yaml:"max_phases"`
	Health         float64        `yaml:"health"`
	MaxHealth      float64        `yaml:"max_health"`
	HealthPct      float64        `yaml:"health_pct"`
	ChargeCount    int            `yaml:"charge_count"`
	MaxChargeCount int            `yaml:"max_charge_count"`
	BurstCount     int            `yaml:"burst_count"`
	Cooldown       float64        `yaml:"cooldown_remaining"`
	FacingDeg      float64        `yaml:"facing_deg"`
	LastSummon     int            `yaml:"last_summon"`
	Weights        PatternWeights `yaml:"weights"`
	Telegraph      bool           `yaml:"telegraph"`
	Defeated       bool           `yaml:"defeated"`
}

func (e *Encounter) Snapshot() Snapshot {
	return Snapshot{
		ID:             e.id.String(),
		Boss:           e.cfg.ID,
		State:          e.state,
		StateTimer:     e.stateTimer,
		Phase:          e.phase,
		MaxPhases:      e.maxPhases,
		Health:         e.combatant.Health,
		MaxHealth:      e.combatant.MaxHealth,
		HealthPct:      e.combatant.Percentage(),
		ChargeCount:    e.charge.count,
		MaxChargeCount: e.charge.maxCount,
		BurstCount:     e.projectile.burstCount,
		Cooldown:       e.cooldownRemaining,
		FacingDeg:      common.RadToDeg(e.facing.ToAngle()),
		LastSummon:     e.summon.spawned,
		Weights:        e.weights,
		Telegraph:      e.telegraph != nil,
		Defeated:       e.dead,
	}
}

// YAML renders the snapshot for debug export.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
