package ports

import (
	"context"

	"github.com/multirole/auth-api/internal/core/domain"
)

// RegisterInput carries an already-validated registration request into the
// core. Field validation (length, charset, email format) happens at the HTTP
// boundary; the service does not re-derive those rules.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     domain.Role
}

// AuthService orchestrates the credential lifecycle.
type AuthService interface {
	// Register creates a new user. Returns domain.ErrUserExists when the
	// username is already taken, whether detected by the pre-check or by the
	// storage unique index during a registration race.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Authenticate verifies credentials against the active user record.
	// A nil user with nil error means the credentials did not match; the
	// result is identical for an unknown username and a wrong password so
	// callers cannot be used to enumerate accounts.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
