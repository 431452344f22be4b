package ports

import (
	"context"
	"errors"
	"time"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists serialized session profiles keyed by bearer token.
// Written at login, deleted at logout; the session reader only loads.
type SessionStore interface {
	Save(ctx context.Context, token string, profile []byte, ttl time.Duration) error
	// Load returns the raw profile blob, or ErrSessionNotFound when no
	// profile exists for the token.
	Load(ctx context.Context, token string) ([]byte, error)
	Delete(ctx context.Context, token string) error
}

// SessionResolver turns a bearer token into an identity snapshot.
//
// Resolve fails soft: a malformed or missing profile yields a nil identity and
// a nil error. A non-nil error indicates the backing store itself was
// unreachable; callers treat that the same as no identity.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}
