// Package syncval provides a mutex-guarded holder for a single value.
// It is the only structure the foreground render loop and background
// producers are allowed to share: producers Set, the render path Gets,
// and a read never observes a partially written value.
package syncval

import "sync"

// Value holds one value of type T behind a lock.
// The zero Value is not usable; construct with New so readers always
// observe a well-defined initial value rather than a zero surprise.
type Value[T any] struct {
	mu sync.RWMutex
	v  T
}

// New returns a Value initialized to initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the most recently completed Set, or the initial value if
// no Set has occurred.
func (s *Value[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set replaces the held value. Last write wins between concurrent
// setters; callers needing a handoff order must sequence themselves.
func (s *Value[T]) Set(v T) {
	s.mu.Lock()
	s.v = v
	s.mu.Unlock()
}

// Update applies fn to the held value under the lock and stores the
// result. Useful for append-style producers (e.g. streaming buffers).
func (s *Value[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.v = fn(s.v)
	s.mu.Unlock()
}
