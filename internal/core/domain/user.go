package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Roles        []Role    `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated actor attached to a request. It is derived
// from the persisted session profile, never from request input directly.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Roles []Role `json:"roles,omitempty"`
}

// RoleSet returns every role the identity holds. When only the singular Role
// field is populated, the set is synthesized from it.
func (id *Identity) RoleSet() []Role {
	if id == nil {
		return nil
	}
	if len(id.Roles) > 0 {
		return id.Roles
	}
	if id.Role != "" {
		return []Role{id.Role}
	}
	return nil
}

// HasRole reports whether the identity holds the given canonical role.
func (id *Identity) HasRole(role Role) bool {
	for _, held := range id.RoleSet() {
		if held == role {
			return true
		}
	}
	return false
}
