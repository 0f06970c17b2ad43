package boss

import (
	"errors"
	"fmt"

	"github.com/milk9111/bossfight/combat"
)

const (
	// DwellTime is how long the boss must idle before a new pattern may start.
	DwellTime = 2.0
	// VolleyWarmUp is the delay before a phase 2+ volley fires.
	VolleyWarmUp = 0.5

	TelegraphAlphaStart = 0.3
	TelegraphAlphaEnd   = 0.9
)

// Config is the authored description of one boss. It is loaded from yaml
// through the prefabs package.
type Config struct {
	ID             string  `yaml:"id"`
	DisplayName    string  `yaml:"display_name"`
	MaxHealth      float64 `yaml:"max_health"`
	Damage         float64 `yaml:"damage"`
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	DetectionRange float64 `yaml:"detection_range"`

	Resistance ResistanceConfig `yaml:"resistance"`

	// PhaseThresholds are health fractions, highest first, e.g. [0.7, 0.4].
	// Crossing thresholds[i] moves the boss to phase i+2. Values outside
	// (0, 1] or not strictly decreasing fail with ErrThresholdOrder.
	PhaseThresholds []float64 `yaml:"phase_thresholds"`
	// MaxPhases defaults to len(PhaseThresholds)+1.
	MaxPhases int `yaml:"max_phases"`

	Weights  PatternWeights `yaml:"weights"`
	Cooldown CooldownRange  `yaml:"cooldown"`

	Charge     ChargeConfig     `yaml:"charge"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Summon     SummonConfig     `yaml:"summon"`

	// Script is an optional tengo encounter script path relative to prefabs/.
	Script string `yaml:"script"`
}

type ResistanceConfig struct {
	// CCImmune zeroes damage from the crowd-control elements (ice, lightning).
	CCImmune bool `yaml:"cc_immune"`
	// Scalar is a fractional damage reduction in [0, 1].
	Scalar float64 `yaml:"scalar"`
	// SuperArmor suppresses knockback and hurt reactions.
	SuperArmor bool `yaml:"super_armor"`
	// Multipliers seed the default status receiver.
	Multipliers map[combat.Tag]float64 `yaml:"multipliers"`
}

// PatternWeights are the relative odds of each pattern being selected.
type PatternWeights struct {
	Charge     int `yaml:"charge"`
	Projectile int `yaml:"projectile"`
	Summon     int `yaml:"summon"`
}

func (w PatternWeights) Total() int {
	return max(w.Charge, 0) + max(w.Projectile, 0) + max(w.Summon, 0)
}

type CooldownRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type ChargeConfig struct {
	PrepareTime float64 `yaml:"prepare_time"`
	Speed       float64 `yaml:"speed"`
	Duration    float64 `yaml:"duration"`
	StunTime    float64 `yaml:"stun_time"`
	// ContactDamage is dealt to the player on touch while charging.
	ContactDamage float64 `yaml:"contact_damage"`

	Phase1Count      int  `yaml:"phase1_count"`
	Phase1WallBounce bool `yaml:"phase1_wall_bounce"`

	Phase2CountMin   int  `yaml:"phase2_count_min"`
	Phase2CountMax   int  `yaml:"phase2_count_max"`
	Phase2WallBounce bool `yaml:"phase2_wall_bounce"`
}

type ProjectileConfig struct {
	Speed    float64    `yaml:"speed"`
	Damage   float64    `yaml:"damage"`
	Tag      combat.Tag `yaml:"tag"`
	Radius   float64    `yaml:"radius"`
	Lifetime float64    `yaml:"lifetime"`

	Phase1BurstCount int     `yaml:"phase1_burst_count"`
	BurstInterval    float64 `yaml:"burst_interval"`
	SingleShotDelay  float64 `yaml:"single_shot_delay"`

	FanCount int `yaml:"fan_count"`
	// FanAngle is the total spread in degrees.
	FanAngle    float64 `yaml:"fan_angle"`
	CircleCount int     `yaml:"circle_count"`
}

type SummonConfig struct {
	// Radius around the boss used when no spawn area is supplied.
	Radius float64       `yaml:"radius"`
	Phases []SummonPhase `yaml:"phases"`
}

// SummonPhase is the summon table for one phase. Phases beyond the table
// reuse its last row.
type SummonPhase struct {
	CastTime float64  `yaml:"cast_time"`
	Count    int      `yaml:"count"`
	Pool     []string `yaml:"pool"`
}

func (c SummonConfig) ForPhase(phase int) SummonPhase {
	if len(c.Phases) == 0 {
		return SummonPhase{}
	}
	idx := min(max(phase-1, 0), len(c.Phases)-1)
	return c.Phases[idx]
}

func (c Config) maxPhases() int {
	if c.MaxPhases > 0 {
		return c.MaxPhases
	}
	return len(c.PhaseThresholds) + 1
}

var (
	ErrMissingID       = errors.New("boss: missing id")
	ErrInvalidHealth   = errors.New("boss: max_health must be positive")
	ErrInvalidRange    = errors.New("boss: detection_range must be positive")
	ErrThresholdOrder  = errors.New("boss: phase_thresholds must be strictly decreasing in (0, 1], e.g. [0.7, 0.4]")
	ErrNegativeWeight  = errors.New("boss: pattern weights must be non-negative")
	ErrCooldownRange   = errors.New("boss: cooldown range must satisfy 0 <= min <= max")
	ErrChargeCount     = errors.New("boss: charge counts must be at least 1 with min <= max")
	ErrResistanceRange = errors.New("boss: resistance scalar must be in [0, 1]")
	ErrMaxPhases       = errors.New("boss: invalid max_phases")
)

// Validate reports every problem in c, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.ID == "" {
		errs = append(errs, ErrMissingID)
	}
	if c.MaxHealth <= 0 {
		errs = append(errs, ErrInvalidHealth)
	}
	if c.DetectionRange <= 0 {
		errs = append(errs, ErrInvalidRange)
	}
	if c.MaxPhases < 0 {
		errs = append(errs, fmt.Errorf("%w: %d is negative", ErrMaxPhases, c.MaxPhases))
	}
	prev := 1.0
	for i, th := range c.PhaseThresholds {
		if th <= 0 || th > 1 || (i > 0 && th >= prev) {
			errs = append(errs, fmt.Errorf("%w: thresholds[%d]=%v", ErrThresholdOrder, i, th))
			break
		}
		prev = th
	}
	if c.Weights.Charge < 0 || c.Weights.Projectile < 0 || c.Weights.Summon < 0 {
		errs = append(errs, ErrNegativeWeight)
	}
	if c.Cooldown.Min < 0 || c.Cooldown.Max < c.Cooldown.Min {
		errs = append(errs, ErrCooldownRange)
	}
	if c.Charge.Phase1Count < 1 || c.Charge.Phase2CountMin < 1 || c.Charge.Phase2CountMax < c.Charge.Phase2CountMin {
		errs = append(errs, ErrChargeCount)
	}
	if c.Resistance.Scalar < 0 || c.Resistance.Scalar > 1 {
		errs = append(errs, ErrResistanceRange)
	}
	for i, p := range c.Summon.Phases {
		if p.Count < 0 || p.CastTime < 0 {
			errs = append(errs, fmt.Errorf("boss: summon.phases[%d]: count and cast_time must not be negative", i))
		}
	}
	return errors.Join(errs...)
}
