package domain

import "time"

// AuditStatus classifies the outcome an audit entry documents.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailure AuditStatus = "FAILURE"
	AuditError   AuditStatus = "ERROR"
)

// Audit action tags used by this service.
const (
	ActionUserRegister   = "USER_REGISTER"
	ActionUserLogin      = "USER_LOGIN"
	ActionUserUpdate     = "USER_UPDATE"
	ActionUserDeactivate = "USER_DEACTIVATE"
)

// AuditLog is one append-only security event record. Entries are never
// updated or deleted by this service; UserID is empty when the event could
// not be attributed to a known account (failed logins).
type AuditLog struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id,omitempty"`
	Username     string      `json:"username"`
	Action       string      `json:"action"`
	ResourceType string      `json:"resource_type,omitempty"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"`
	IPAddress    string      `json:"ip_address,omitempty"`
	UserAgent    string      `json:"user_agent,omitempty"`
	RequestID    string      `json:"request_id,omitempty"`
	Status       AuditStatus `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
