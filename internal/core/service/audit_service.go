package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/multirole/auth-api/internal/api/metrics"
	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/core/ports"
	"github.com/multirole/auth-api/internal/pkg/reqctx"
)

// AuditService implements ports.AuditRecorder. Writes are best-effort and
// form a failure domain independent of the primary operation: a storage
// error here is logged for operators and swallowed, never returned.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

func (s *AuditService) LogSuccess(ctx context.Context, userID, username, action, resourceType, resourceID string) {
	s.record(ctx, userID, username, action, resourceType, resourceID, domain.AuditSuccess, "")
}

func (s *AuditService) LogFailure(ctx context.Context, userID, username, action, resourceType, resourceID, errorMessage string) {
	s.record(ctx, userID, username, action, resourceType, resourceID, domain.AuditFailure, errorMessage)
}

func (s *AuditService) LogError(ctx context.Context, userID, username, action, resourceType, resourceID, errorMessage string) {
	s.record(ctx, userID, username, action, resourceType, resourceID, domain.AuditError, errorMessage)
}

func (s *AuditService) record(ctx context.Context, userID, username, action, resourceType, resourceID string, status domain.AuditStatus, errorMessage string) {
	entry := &domain.AuditLog{
		UserID:       userID,
		Username:     username,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Status:       status,
		ErrorMessage: errorMessage,
		CreatedAt:    time.Now().UTC(),
	}
	if meta, ok := reqctx.FromContext(ctx); ok {
		entry.RequestID = meta.RequestID
		entry.IPAddress = meta.IPAddress
		entry.UserAgent = meta.UserAgent
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		metrics.AuditWriteFailuresTotal.Inc()
		s.log.Error().Err(err).
			Str("username", username).
			Str("action", action).
			Msg("audit write failed")
		return
	}

	s.log.Info().
		Str("username", username).
		Str("action", action).
		Str("status", string(status)).
		Msg("audit entry recorded")
}
