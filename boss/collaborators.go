package boss

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . StatusReceiver,TargetTracker,Body,ProjectileSpawner,MinionSpawner,SpawnArea,TelegraphFactory,Telegraph,Rand

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/combat"
)

// StatusReceiver scales incoming damage by tag and accepts on-hit effects.
type StatusReceiver interface {
	DamageMultiplier(tag combat.Tag) float64
	ApplyStatus(effect combat.StatusEffect)
}

// TargetTracker knows where the boss's target is and moves the boss toward it
// while no pattern is running.
type TargetTracker interface {
	Target() (cp.Vector, bool)
	Pursue(dt float64)
}

type Body interface {
	Position() cp.Vector
	SetPosition(pos cp.Vector)
}

// ProjectileSpec is handed to the projectile spawner for every shot.
type ProjectileSpec struct {
	Position  cp.Vector
	Direction cp.Vector
	Speed     float64
	Damage    float64
	Tag       combat.Tag
	Radius    float64
	Lifetime  float64
}

type ProjectileSpawner interface {
	SpawnProjectile(spec ProjectileSpec)
}

// MinionSpawnRequest asks for one minion of Type at Position.
type MinionSpawnRequest struct {
	Type     string
	Position cp.Vector
}

type MinionSpawner interface {
	SpawnMinion(req MinionSpawnRequest)
}

// SpawnArea is an optional shape summons are placed in.
type SpawnArea interface {
	RandomPoint(r Rand) cp.Vector
}

// Telegraph is the visual warning shown while a charge is being prepared.
// Destroy must be safe to call more than once.
type Telegraph interface {
	SetOrigin(pos cp.Vector)
	SetDirection(dir cp.Vector)
	SetAlpha(alpha float64)
	Destroy()
}

type TelegraphFactory interface {
	CreateTelegraph(origin, dir cp.Vector) Telegraph
}

// Rand is the random source the encounter draws from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Collaborators bundles everything the encounter talks to. Any field may be
// nil; the encounter skips the matching behavior.
type Collaborators struct {
	Status      StatusReceiver
	Target      TargetTracker
	Body        Body
	Projectiles ProjectileSpawner
	Minions     MinionSpawner
	Area        SpawnArea
	Telegraphs  TelegraphFactory
}

type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

var _ Rand = (*rand.Rand)(nil)
