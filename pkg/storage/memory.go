package storage

import (
	"context"
	"sync"

	"fitnote/local-app/pkg/log"
)

// MemoryStore implements KeyValueStore with an in-memory table. It backs
// the table-simulation configuration and the test suites; contents vanish
// when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	logger *log.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger *log.Logger) *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
		logger: logger,
	}
}

// Get retrieves the value stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored record in place.
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
