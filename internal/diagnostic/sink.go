package diagnostic

import (
	"sync"
)

// Sink is an append-only collector shared by concurrent workers. Each call
// appends a complete unit, so entries from different workers never interleave.
// Items carry their own diagnostics.
type Sink[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewSink creates an empty Sink.
func NewSink[T any]() *Sink[T] {
	return &Sink[T]{}
}

// Append adds one item.
func (s *Sink[T]) Append(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
}

// Items returns a copy of the collected items in append order.
func (s *Sink[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]T(nil), s.items...)
}
