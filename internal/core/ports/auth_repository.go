package ports

import (
	"context"

	"github.com/multirole/auth-api/internal/core/domain"
)

// UserRepository defines the interface for durable user credential storage.
// Username uniqueness is enforced by the store itself (unique index), not by
// callers; Insert surfaces a violation as domain.ErrUserExists.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindActiveByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (int64, error)
	Deactivate(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
