package config

import (
	"sync"
	"sync/atomic"
)

// Store publishes immutable settings snapshots. Readers never block;
// writers serialize through Update.
type Store struct {
	mu  sync.Mutex
	cur atomic.Pointer[Config]
}

// NewStore creates a store holding a sanitized copy of c.
func NewStore(c Config) *Store {
	c.Sanitize()
	s := &Store{}
	s.cur.Store(&c)
	return s
}

// Snapshot returns the current settings. The result is a copy and may be
// modified freely.
func (s *Store) Snapshot() Config {
	c := *s.cur.Load()
	return c
}

// Update applies fn to a copy of the current settings, sanitizes it and
// publishes the result.
func (s *Store) Update(fn func(*Config)) Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *s.cur.Load()
	fn(&c)
	c.Sanitize()
	s.cur.Store(&c)
	return c
}
