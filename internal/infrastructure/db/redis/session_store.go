package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/verdantis/nursery-system/internal/core/ports"
)

// SessionStore persists serialized session profiles in Redis, keyed by the
// bearer token. Key format: session:<token>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save writes the profile blob with the given TTL. The TTL matches the token
// lifetime so stale profiles expire with their tokens.
func (s *SessionStore) Save(ctx context.Context, token string, profile []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), profile, ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Load returns the raw profile blob, or ports.ErrSessionNotFound when the
// token has no stored profile.
func (s *SessionStore) Load(ctx context.Context, token string) ([]byte, error) {
	blob, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session load: %w", err)
	}
	return blob, nil
}

// Delete removes the session profile. Deleting an absent key is a no-op.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
