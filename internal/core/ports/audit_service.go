package ports

import "context"

// AuditRecorder appends security events best-effort: implementations must
// never propagate a storage failure to the caller, because auditing must not
// abort the operation it documents. Request correlation (request id, client
// IP, user agent) is read from the context when present.
type AuditRecorder interface {
	LogSuccess(ctx context.Context, userID, username, action, resourceType, resourceID string)
	LogFailure(ctx context.Context, userID, username, action, resourceType, resourceID, errorMessage string)
	LogError(ctx context.Context, userID, username, action, resourceType, resourceID, errorMessage string)
}
