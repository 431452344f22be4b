package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

type stubSessionStore struct {
	blobs map[string][]byte
	err   error
}

func (s *stubSessionStore) Save(_ context.Context, token string, profile []byte, _ time.Duration) error {
	if s.blobs == nil {
		s.blobs = map[string][]byte{}
	}
	s.blobs[token] = profile
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, token string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	blob, ok := s.blobs[token]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	return blob, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.blobs, token)
	return nil
}

func TestSessionReader_EmptyTokenIsAnonymous(t *testing.T) {
	reader := NewSessionReader(&stubSessionStore{}, false, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil identity, got %+v", id)
	}
}

func TestSessionReader_ResolvesStoredProfile(t *testing.T) {
	store := &stubSessionStore{blobs: map[string][]byte{
		"tok-1": []byte(`{"email":"mia@example.com","role":"manager"}`),
	}}
	reader := NewSessionReader(store, false, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == nil {
		t.Fatal("expected identity")
	}
	if id.Email != "mia@example.com" {
		t.Errorf("email = %q", id.Email)
	}
	if id.Role != domain.RoleManager {
		t.Errorf("role = %q", id.Role)
	}
	if len(id.Roles) != 1 || id.Roles[0] != domain.RoleManager {
		t.Errorf("roles not synthesized from singular role: %v", id.Roles)
	}
}

func TestSessionReader_MalformedProfileIsAnonymous(t *testing.T) {
	store := &stubSessionStore{blobs: map[string][]byte{
		"tok-1": []byte(`{not json at all`),
	}}
	reader := NewSessionReader(store, false, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("malformed profile must not surface as an error, got: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil identity, got %+v", id)
	}
}

func TestSessionReader_MissingProfileWithoutFallback(t *testing.T) {
	reader := NewSessionReader(&stubSessionStore{}, false, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "unknown-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Fatalf("token without profile must stay anonymous, got %+v", id)
	}
}

func TestSessionReader_MissingProfileWithFallback(t *testing.T) {
	reader := NewSessionReader(&stubSessionStore{}, true, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "unknown-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == nil {
		t.Fatal("fallback enabled: expected placeholder identity")
	}
	if id.Role != domain.RoleCustomer {
		t.Errorf("fallback role = %q, want customer", id.Role)
	}
}

func TestSessionReader_StoreOutageSurfacesError(t *testing.T) {
	store := &stubSessionStore{err: errors.New("connection refused")}
	reader := NewSessionReader(store, false, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "tok-1")
	if err == nil {
		t.Fatal("expected error from unreachable store")
	}
	if id != nil {
		t.Fatalf("expected nil identity on store error, got %+v", id)
	}
}

func TestSessionReader_NormalizesRolesList(t *testing.T) {
	store := &stubSessionStore{blobs: map[string][]byte{
		"tok-1": []byte(`{"email":"lee@example.com","roles":["warehouse_employee","manager"]}`),
	}}
	reader := NewSessionReader(store, false, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Role != domain.RoleWarehouseEmployee {
		t.Errorf("singular role should default to first of list, got %q", id.Role)
	}
	if !id.HasRole(domain.RoleManager) {
		t.Error("expected manager in role set")
	}
}

func TestSessionReader_CanonicalizesLegacySpelling(t *testing.T) {
	store := &stubSessionStore{blobs: map[string][]byte{
		"tok-1": []byte(`{"email":"ana@example.com","role":"agriculture_engineer"}`),
	}}
	reader := NewSessionReader(store, false, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Role != domain.RoleAgriculturalEngineer {
		t.Errorf("legacy spelling not canonicalized: %q", id.Role)
	}
}

func TestEncodeProfile_RoundTripsThroughReader(t *testing.T) {
	user := &domain.User{
		Email: "sam@example.com",
		Role:  domain.RoleDeliveryCompany,
		Roles: []domain.Role{domain.RoleDeliveryCompany},
	}
	blob, err := EncodeProfile(user)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	store := &stubSessionStore{blobs: map[string][]byte{"tok-1": blob}}
	reader := NewSessionReader(store, false, zerolog.Nop())

	id, err := reader.Resolve(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Email != user.Email || id.Role != user.Role {
		t.Errorf("round trip mismatch: %+v", id)
	}
}
