// Package repository provides the in-memory collection backing every
// domain repository. Records are held by value in a map keyed by id, with
// insertion order preserved for listing. A relational implementation can
// replace the domain repositories without touching their interfaces.
package repository

import (
	"sync"
)

// Store is a concurrency-safe keyed collection. Writes follow
// last-write-wins semantics; there is no versioning and no cascade.
type Store[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		records: make(map[string]T),
	}
}

// Insert stores a new record under the given id. Inserting an existing id
// overwrites the record but keeps its original list position.
func (s *Store[T]) Insert(id string, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		s.order = append(s.order, id)
	}

	s.records[id] = record
}

// Get returns the record for the given id, reporting whether it exists.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]

	return record, ok
}

// All returns every record in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]T, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.records[id])
	}

	return records
}

// Replace overwrites an existing record, reporting whether it was present.
func (s *Store[T]) Replace(id string, record T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return false
	}

	s.records[id] = record

	return true
}

// Delete removes the record for the given id, reporting whether a record
// was removed. Dependents referencing the id are untouched.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return false
	}

	delete(s.records, id)

	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true
}

// Find returns the first record, in insertion order, matching the
// predicate.
func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if match(s.records[id]) {
			return s.records[id], true
		}
	}

	var zero T

	return zero, false
}

// Filter returns every record, in insertion order, matching the predicate.
func (s *Store[T]) Filter(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]T, 0)
	for _, id := range s.order {
		if match(s.records[id]) {
			records = append(records, s.records[id])
		}
	}

	return records
}
