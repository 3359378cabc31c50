package memory

import (
	"context"
	"sync"
	"time"
)

// SessionStore keeps revoked token IDs in memory until they expire.
type SessionStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *SessionStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.revoked[tokenID] = expiresAt
	return nil
}

func (s *SessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !until.IsZero() && !s.now().Before(until) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// sweep drops entries whose tokens have expired anyway. Callers hold mu.
func (s *SessionStore) sweep() {
	now := s.now()
	for id, until := range s.revoked {
		if !until.IsZero() && !now.Before(until) {
			delete(s.revoked, id)
		}
	}
}
