package ecs

import "strconv"

// Entity is a handle to a world slot. The low 32 bits are the slot and the
// high 32 bits count how many times the slot was recycled, so a handle kept
// after DestroyEntity never resolves to the boss or minion that reuses the
// slot. Slots start at 1 and the zero Entity means "none".
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const idBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<idBits | uint64(id))
}

func (e Entity) id() entityID           { return entityID(uint32(e)) }
func (e Entity) generation() generation { return generation(uint32(uint64(e) >> idBits)) }

// String renders slot and generation as "12v3" for logs.
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e names a slot at all; it says nothing about liveness,
// see IsAlive.
func (e Entity) Valid() bool { return e.id() > 0 }
