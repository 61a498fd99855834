package game

import (
	"context"
	"sync"
)

// InMemoryRoundStore keeps snapshots in a map. Used when Redis is not configured
// and in tests; state is lost on restart.
type InMemoryRoundStore struct {
	mu sync.Mutex
	m  map[string]RoundSnapshot
}

func NewInMemoryRoundStore() *InMemoryRoundStore {
	return &InMemoryRoundStore{
		m: make(map[string]RoundSnapshot),
	}
}

func (s *InMemoryRoundStore) Save(_ context.Context, roundID string, snap RoundSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[roundID] = snap
	return nil
}

func (s *InMemoryRoundStore) Load(_ context.Context, roundID string) (RoundSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.m[roundID]
	return snap, ok, nil
}
