package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadBossConfig loads and validates a boss spec.
func LoadBossConfig(filename string) (boss.Config, error) {
	cfg, err := LoadSpec[boss.Config](filename)
	if err != nil {
		return boss.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return boss.Config{}, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return cfg, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectSpec) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

func (r RectSpec) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

type ShotSpec struct {
	Damage   float64    `yaml:"damage"`
	Speed    float64    `yaml:"speed"`
	Tag      combat.Tag `yaml:"tag"`
	Radius   float64    `yaml:"radius"`
	Lifetime float64    `yaml:"lifetime"`
	Cooldown float64    `yaml:"cooldown"`
	// Knockback is how far a hit pushes the boss, in pixels.
	Knockback float64 `yaml:"knockback"`
	// Status is applied to whatever the shot hits.
	Status *combat.StatusEffect `yaml:"status"`
}

type PlayerSpec struct {
	Name      string    `yaml:"name"`
	MoveSpeed float64   `yaml:"move_speed"`
	Health    float64   `yaml:"health"`
	Radius    float64   `yaml:"radius"`
	IFrames   float64   `yaml:"iframes"`
	Shot      ShotSpec  `yaml:"shot"`
	Color     YAMLColor `yaml:"color"`
}

type MinionSpec struct {
	Health          float64   `yaml:"health"`
	Speed           float64   `yaml:"speed"`
	Radius          float64   `yaml:"radius"`
	ContactDamage   float64   `yaml:"contact_damage"`
	ContactCooldown float64   `yaml:"contact_cooldown"`
	Color           YAMLColor `yaml:"color"`
}

// MinionCatalog maps minion type names used in boss summon pools to specs.
type MinionCatalog map[string]MinionSpec

type ArenaSpec struct {
	Name        string   `yaml:"name"`
	Width       float64  `yaml:"width"`
	Height      float64  `yaml:"height"`
	Boss        string   `yaml:"boss"`
	BossSpawn   Vec2Spec `yaml:"boss_spawn"`
	PlayerSpawn Vec2Spec `yaml:"player_spawn"`
	// SummonArea restricts minion placement. Left empty, summons fall back
	// to the boss's summon radius.
	SummonArea RectSpec      `yaml:"summon_area"`
	Telegraph  TelegraphSpec `yaml:"telegraph"`
}

// TelegraphSpec sizes the charge warning drawn ahead of the boss.
type TelegraphSpec struct {
	Length float64   `yaml:"length"`
	Width  float64   `yaml:"width"`
	Color  YAMLColor `yaml:"color"`
}

func (a ArenaSpec) Bounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: a.Width, T: a.Height}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
