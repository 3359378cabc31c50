package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// minRevocationTTL keeps a revocation alive briefly even when the token is
// already at (or past) its expiry, which covers clock skew between replicas.
const minRevocationTTL = time.Minute

// SessionStore records revoked session tokens in Redis.
// Key format: session:revoked:<token_id>
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

// Revoke marks tokenID as revoked until expiresAt.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if expiresAt.IsZero() || ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}
	if err := s.client.Set(ctx, s.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been revoked and not yet expired.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("session revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) key(tokenID string) string {
	return "session:revoked:" + tokenID
}
