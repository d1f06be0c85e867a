package ports

import "github.com/multirole/auth-api/internal/core/domain"

// TokenIssuer builds stateless signed bearer tokens. Validity is purely
// signature plus expiry; nothing is persisted and nothing can be revoked.
type TokenIssuer interface {
	GenerateToken(user *domain.User) (string, error)
}
