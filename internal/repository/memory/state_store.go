package memory

import (
	"context"
	"sync"
	"time"

	"go-form-template/internal/domain"
)

type entry struct {
	state     domain.FormState
	expiresAt time.Time
}

// StateStore keeps form states in process memory. States are copied on the
// way in and out so handlers never share a snapshot.
type StateStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// NewStateStore creates a store whose entries expire ttl after their last save.
func NewStateStore(ttl time.Duration) *StateStore {
	return &StateStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (s *StateStore) Get(ctx context.Context, sessionID string) (*domain.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return nil, domain.ErrStateNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, sessionID)
		return nil, domain.ErrStateNotFound
	}
	state := e.state.Clone()
	return &state, nil
}

func (s *StateStore) Save(ctx context.Context, state *domain.FormState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[state.SessionID] = entry{
		state:     state.Clone(),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *StateStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Len returns the number of stored states, expired ones included until swept.
func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes expired entries and returns how many were dropped.
func (s *StateStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps every interval until ctx is done.
func (s *StateStore) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}
