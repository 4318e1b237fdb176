package engine

import (
	"github.com/DJG-inc/DodgeBallThreeJS/core"
)

// Store is an insertion-ordered container of T keyed by entity
// Iteration order is stable across removals so tie-breaks are deterministic
// Pointers returned by Get and Items are valid until the next Add or Remove
type Store[T any] struct {
	items    []T
	entities []core.Entity
	index    map[core.Entity]int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items:    make([]T, 0, 32),
		entities: make([]core.Entity, 0, 32),
		index:    make(map[core.Entity]int),
	}
}

// Add inserts or replaces the value for e
func (s *Store[T]) Add(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.items[i] = val
		return
	}
	s.index[e] = len(s.items)
	s.items = append(s.items, val)
	s.entities = append(s.entities, e)
}

func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	i, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return &s.items[i], true
}

func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove deletes e, shifting later entries to keep order; reports whether e existed
func (s *Store[T]) Remove(e core.Entity) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	delete(s.index, e)

	copy(s.items[i:], s.items[i+1:])
	copy(s.entities[i:], s.entities[i+1:])

	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	s.entities = s.entities[:len(s.entities)-1]

	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
	return true
}

// Entities returns a copy of the keys in iteration order
func (s *Store[T]) Entities() []core.Entity {
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Items exposes the backing slice for in-place iteration; do not Add or Remove while ranging
func (s *Store[T]) Items() []T {
	return s.items
}

func (s *Store[T]) Len() int {
	return len(s.items)
}

func (s *Store[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
	s.entities = s.entities[:0]
	clear(s.index)
}
