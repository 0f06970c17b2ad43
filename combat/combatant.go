package combat

// Combatant is the capability record shared by the boss, the player and
// minions: health plus the base stats attacks and movement read from.
type Combatant struct {
	MaxHealth float64
	Health    float64
	Damage    float64
	Speed     float64
	Faction   Faction

	// Invulnerable is counted down in seconds by Tick.
	Invulnerable float64

	OnDamage func(c *Combatant, applied float64)
	OnDeath  func(c *Combatant)
}

// NewCombatant creates a Combatant at full health.
func NewCombatant(maxHealth, damage, speed float64, faction Faction) *Combatant {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	return &Combatant{
		MaxHealth: maxHealth,
		Health:    maxHealth,
		Damage:    damage,
		Speed:     speed,
		Faction:   faction,
	}
}

func (c *Combatant) Alive() bool {
	return c != nil && c.Health > 0
}

// Percentage returns health / max health, or 0 for a nil or degenerate record.
func (c *Combatant) Percentage() float64 {
	if c == nil || c.MaxHealth <= 0 {
		return 0
	}
	return c.Health / c.MaxHealth
}

// ApplyDamage subtracts amount, clamping health at zero, and returns the
// amount actually removed.
func (c *Combatant) ApplyDamage(amount float64) float64 {
	if c == nil || !c.Alive() || amount <= 0 || c.Invulnerable > 0 {
		return 0
	}
	before := c.Health
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
	applied := before - c.Health
	if c.OnDamage != nil {
		c.OnDamage(c, applied)
	}
	if c.Health <= 0 && c.OnDeath != nil {
		c.OnDeath(c)
	}
	return applied
}

// Heal restores health up to MaxHealth.
func (c *Combatant) Heal(amount float64) {
	if c == nil || !c.Alive() || amount <= 0 {
		return
	}
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// StartInvulnerability blocks damage for the given number of seconds.
func (c *Combatant) StartInvulnerability(seconds float64) {
	if c == nil || seconds <= 0 {
		return
	}
	c.Invulnerable = seconds
}

func (c *Combatant) Tick(dt float64) {
	if c == nil || c.Invulnerable <= 0 {
		return
	}
	c.Invulnerable -= dt
	if c.Invulnerable < 0 {
		c.Invulnerable = 0
	}
}

func (c *Combatant) Reset() {
	if c == nil {
		return
	}
	c.Health = c.MaxHealth
	c.Invulnerable = 0
}
