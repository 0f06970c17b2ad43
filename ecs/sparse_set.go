package ecs

// store is the type-erased view of a sparseSet the world needs to drop an
// entity's components on destroy.
type store interface {
	remove(e Entity) bool
	size() int
}

// sparseSet keeps components densely packed and indexed by entity slot.
// The dense side stores full entity handles so a stale generation misses.
type sparseSet[T any] struct {
	dense  []Entity
	values []*T
	// sparse[id-1] is the dense index plus one; zero means absent.
	sparse []int
}

func (s *sparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1] - 1
	if idx < 0 || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *sparseSet[T]) has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	if id > len(s.sparse) {
		s.sparse = append(s.sparse, make([]int, id-len(s.sparse))...)
	}
	// A stale handle for the same slot is replaced.
	if old := s.sparse[id-1] - 1; old >= 0 {
		s.removeAt(old)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense)
}

func (s *sparseSet[T]) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	s.removeAt(idx)
	return true
}

func (s *sparseSet[T]) removeAt(idx int) {
	last := len(s.dense) - 1
	removed := s.dense[idx]
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.values[idx] = s.values[last]
		s.sparse[moved.id()-1] = idx + 1
	}
	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[removed.id()-1] = 0
}

func (s *sparseSet[T]) size() int {
	return len(s.dense)
}

// entities returns a copy of the dense handles so callers may mutate the set
// while iterating.
func (s *sparseSet[T]) entities() []Entity {
	return append([]Entity(nil), s.dense...)
}
