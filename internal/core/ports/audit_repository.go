package ports

import (
	"context"
	"time"

	"github.com/multirole/auth-api/internal/core/domain"
)

// AuditRepository persists append-only security events. The store never
// updates or deletes entries; retention is an external housekeeping concern.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditLog) error
	FindRecent(ctx context.Context, limit, offset int) ([]domain.AuditLog, error)
	FindByUsername(ctx context.Context, username string) ([]domain.AuditLog, error)
	CountActionSince(ctx context.Context, action string, status domain.AuditStatus, since time.Time) (int64, error)
}
