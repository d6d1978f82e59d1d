// Package store provides a small observable state container: a single
// owned snapshot updated through reducer functions, with subscribers
// notified after each transition. Updates are applied one writer at a
// time.
package store

import "sync"

// Store holds one snapshot of type T.
type Store[T any] struct {
	mu          sync.Mutex
	state       T
	nextID      int
	subscribers map[int]func(T)
}

// New creates a store seeded with initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{
		state:       initial,
		subscribers: make(map[int]func(T)),
	}
}

// Get returns the current snapshot.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies the reducer to the current snapshot and notifies
// subscribers with the result. The reducer must not block.
func (s *Store[T]) Update(reduce func(T) T) T {
	s.mu.Lock()
	s.state = reduce(s.state)
	next := s.state
	subs := make([]func(T), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	// Notify outside the lock so subscribers may read the store.
	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Set replaces the snapshot wholesale.
func (s *Store[T]) Set(state T) T {
	return s.Update(func(T) T { return state })
}

// Subscribe registers fn to run after every transition and returns an
// unsubscribe function.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
