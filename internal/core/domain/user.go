package domain

import (
	"errors"
	"time"
)

// Role is the authorization group assigned to a user at registration.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleSales Role = "SALES"
)

// ParseRole maps a request string onto a known role. Empty input defaults
// to RoleUser, matching the registration default.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleSales:
		return Role(s), true
	case "":
		return RoleUser, true
	default:
		return "", false
	}
}

var (
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// User models an authenticated actor in the system. PasswordHash never
// leaves the process: it is excluded from JSON and from every response shape.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
