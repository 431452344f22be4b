package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

// SessionReader resolves bearer tokens into identity snapshots from the
// session store. It fails soft: a malformed or missing profile never produces
// an error, only an absent identity.
type SessionReader struct {
	store ports.SessionStore
	// tokenFallback grants a placeholder customer identity to any token that
	// has no stored profile. Off by default; a token alone proves nothing
	// about who holds it.
	tokenFallback bool
	log           zerolog.Logger
}

func NewSessionReader(store ports.SessionStore, tokenFallback bool, log zerolog.Logger) *SessionReader {
	return &SessionReader{store: store, tokenFallback: tokenFallback, log: log}
}

// sessionProfile mirrors the persisted blob. Stored profiles carry either a
// singular role, a roles list, or both, depending on which flow wrote them.
type sessionProfile struct {
	Email string   `json:"email"`
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// EncodeProfile serializes a user's identity into the session blob format.
func EncodeProfile(user *domain.User) ([]byte, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}
	return json.Marshal(sessionProfile{
		Email: user.Email,
		Role:  string(user.Role),
		Roles: roles,
	})
}

// Resolve looks up and normalizes the identity behind a bearer token.
//
// A nil identity with a nil error means the caller is anonymous: no token, no
// stored profile, or a profile that failed to parse. Only a store outage
// surfaces as an error.
func (s *SessionReader) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, nil
	}

	blob, err := s.store.Load(ctx, token)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			if s.tokenFallback {
				s.log.Warn().Msg("no session profile for token, granting fallback customer identity")
				return &domain.Identity{
					Role:  domain.RoleCustomer,
					Roles: []domain.Role{domain.RoleCustomer},
				}, nil
			}
			return nil, nil
		}
		return nil, fmt.Errorf("session load: %w", err)
	}

	var p sessionProfile
	if err := json.Unmarshal(blob, &p); err != nil {
		s.log.Warn().Err(err).Msg("malformed session profile, treating caller as anonymous")
		return nil, nil
	}

	return identityFromProfile(p), nil
}

// identityFromProfile canonicalizes raw role strings and normalizes the
// identity so both the singular role and the full role set are populated.
func identityFromProfile(p sessionProfile) *domain.Identity {
	id := &domain.Identity{
		Email: p.Email,
		Roles: domain.CanonicalRoles(p.Roles),
	}
	if p.Role != "" {
		id.Role = domain.CanonicalRole(p.Role)
	}
	if len(id.Roles) == 0 && id.Role != "" {
		id.Roles = []domain.Role{id.Role}
	}
	if id.Role == "" && len(id.Roles) > 0 {
		id.Role = id.Roles[0]
	}
	return id
}
