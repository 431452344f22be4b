package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.users == nil {
		r.users = map[string]*domain.User{}
	}
	if _, exists := r.users[u.Email]; exists {
		return nil, domain.ErrUserExists
	}
	u.ID = "id-" + u.Email
	r.users[u.Email] = u
	return u, nil
}

func TestAuthService_RegisterHashesPasswordAndCanonicalizesRole(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, &stubSessionStore{}, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Ana", "ana@example.com", "hunter2", "agriculture_engineer")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleAgriculturalEngineer {
		t.Errorf("role = %q, want canonical agricultural_engineer", user.Role)
	}
	if user.PasswordHash == "hunter2" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")) != nil {
		t.Error("stored hash does not match password")
	}
}

func TestAuthService_RegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, &stubSessionStore{}, "secret", time.Hour)

	_, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pw", "superadmin")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginIssuesTokenAndSavesSession(t *testing.T) {
	repo := &stubUserRepo{}
	sessions := &stubSessionStore{}
	svc := NewAuthService(repo, sessions, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Mia", "mia@example.com", "pw123", "manager"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "mia@example.com", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Email != "mia@example.com" {
		t.Errorf("user email = %q", user.Email)
	}

	// The token must be a valid HS256 JWT carrying the role claim.
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["role"] != "manager" {
		t.Errorf("role claim = %v", claims["role"])
	}

	// Login must persist the session profile the reader resolves later.
	if _, ok := sessions.blobs[token]; !ok {
		t.Error("session profile not saved under the issued token")
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, &stubSessionStore{}, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Mia", "mia@example.com", "pw123", "customer"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "mia@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LogoutRemovesSession(t *testing.T) {
	repo := &stubUserRepo{}
	sessions := &stubSessionStore{}
	svc := NewAuthService(repo, sessions, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Mia", "mia@example.com", "pw123", "customer"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "mia@example.com", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.blobs[token]; ok {
		t.Error("session profile still present after logout")
	}
}
