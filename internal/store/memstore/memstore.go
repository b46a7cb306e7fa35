// Package memstore is a process-local KV, used by tests and --store memory.
package memstore

import (
	"context"
	"sync"
)

type Store struct {
	mu     sync.Mutex
	values map[string]string

	// FailSet, when non-nil, is returned by every Set.
	FailSet error
}

func New() *Store {
	return &Store{values: map[string]string{}}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSet != nil {
		return s.FailSet
	}
	s.values[key] = value
	return nil
}

func (s *Store) Close() error { return nil }
