package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the tagged variant an identity is registered under.
type Role string

const (
	RoleRegular       Role = "regular"
	RoleOwner         Role = "owner"
	RoleAdministrator Role = "administrator"
)

// Roles lists every role in display order.
var Roles = []Role{RoleRegular, RoleOwner, RoleAdministrator}

// ParseRole maps user input onto a Role. The short forms "user" and "admin"
// are accepted because they are what the booking desk has always shown.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular", "user":
		return RoleRegular, nil
	case "owner":
		return RoleOwner, nil
	case "administrator", "admin":
		return RoleAdministrator, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRegular, RoleOwner, RoleAdministrator:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Identity models a registered account. It is immutable once created.
type Identity struct {
	ID         string    `json:"id"`
	Handle     string    `json:"handle"`
	SecretHash string    `json:"-"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// Is reports whether both values refer to the same registered account.
func (i *Identity) Is(other *Identity) bool {
	return i != nil && other != nil && i.ID == other.ID
}

// Session is the authenticated identity as carried by a session token.
type Session struct {
	TokenID    string
	IdentityID string
	Handle     string
	Role       Role
	ExpiresAt  time.Time
}
