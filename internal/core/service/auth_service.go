package service

import (
	"context"
	"errors"
	"time"

	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/core/ports"
)

// AuthService implements registration and credential verification.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	audit  ports.AuditRecorder
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, audit ports.AuditRecorder) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, audit: audit}
}

// Register creates a new active user with a hashed credential.
//
// The FindByUsername pre-check only exists for a friendly duplicate error;
// the unique index behind Insert is the source of truth. Two concurrent
// registrations of the same username both pass the pre-check, and the loser
// gets the same domain.ErrUserExists from the index violation.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	existing, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.LogSuccess(ctx, created.ID, created.Username, domain.ActionUserRegister, "User", created.ID)
	return created, nil
}

// Authenticate verifies credentials against the active user record.
//
// Unknown username and wrong password produce the same (nil, nil) result so
// the response cannot reveal whether an account exists. The caller records
// the login audit outcome, which lets failed attempts be attributed to the
// attempted username.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}
