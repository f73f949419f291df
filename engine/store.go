package engine

import (
	"sync"

	"github.com/lixenwraith/transporters/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern: map for lookup, dense slice for stable iteration order
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity // Insertion ordered, compacted on removal
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 16),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes a component from an entity, preserving order of the rest
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type in insertion order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// RemoveBatch deletes multiple entities in a single pass - O(n+m) vs O(n*m) for individual removes
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	// Single pass compaction of entities slice
	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
}
