package combat

// StatusEffect is a timed modifier applied on hit. Multipliers scale the
// damage the affected target takes from each tag while the effect is active.
type StatusEffect struct {
	Name        string          `yaml:"name"`
	Duration    float64         `yaml:"duration"`
	Multipliers map[Tag]float64 `yaml:"multipliers"`
}

type activeStatus struct {
	effect    StatusEffect
	remaining float64
}

// StatusEffects tracks base tag multipliers and active timed effects for one
// target.
type StatusEffects struct {
	base   map[Tag]float64
	active []activeStatus
}

// NewStatusEffects creates a tracker with the given base multipliers. Tags
// not in base default to 1.
func NewStatusEffects(base map[Tag]float64) *StatusEffects {
	copied := make(map[Tag]float64, len(base))
	for tag, m := range base {
		copied[tag] = m
	}
	return &StatusEffects{base: copied}
}

// DamageMultiplier returns the product of the base multiplier for tag and
// every active effect's multiplier for it.
func (s *StatusEffects) DamageMultiplier(tag Tag) float64 {
	if s == nil {
		return 1
	}
	m := 1.0
	if b, ok := s.base[tag]; ok {
		m = b
	}
	for _, a := range s.active {
		if v, ok := a.effect.Multipliers[tag]; ok {
			m *= v
		}
	}
	if m < 0 {
		return 0
	}
	return m
}

// ApplyStatus adds effect, refreshing the duration if an effect with the same
// name is already active.
func (s *StatusEffects) ApplyStatus(effect StatusEffect) {
	if s == nil || effect.Name == "" || effect.Duration <= 0 {
		return
	}
	for i := range s.active {
		if s.active[i].effect.Name == effect.Name {
			s.active[i].effect = effect
			s.active[i].remaining = effect.Duration
			return
		}
	}
	s.active = append(s.active, activeStatus{effect: effect, remaining: effect.Duration})
}

// Tick advances effect timers and drops expired effects.
func (s *StatusEffects) Tick(dt float64) {
	if s == nil || len(s.active) == 0 {
		return
	}
	kept := s.active[:0]
	for _, a := range s.active {
		a.remaining -= dt
		if a.remaining > 0 {
			kept = append(kept, a)
		}
	}
	s.active = kept
}

func (s *StatusEffects) Has(name string) bool {
	if s == nil {
		return false
	}
	for _, a := range s.active {
		if a.effect.Name == name {
			return true
		}
	}
	return false
}

// Active returns the names of active effects in application order.
func (s *StatusEffects) Active() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.active))
	for _, a := range s.active {
		names = append(names, a.effect.Name)
	}
	return names
}

func (s *StatusEffects) Clear() {
	if s == nil {
		return
	}
	s.active = nil
}
