package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/multirole/auth-api/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

// AuthClaims is the claim set carried by issued bearer tokens. Groups holds
// the user's role; UserID and Email are custom claims consumed by
// downstream services.
type AuthClaims struct {
	jwt.RegisteredClaims
	Groups []string `json:"groups"`
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
}

// JWTIssuer implements ports.TokenIssuer with HS256-signed JWTs. Secret and
// issuer are process-wide configuration loaded once at startup; the issuer
// keeps no state and cannot revoke what it signs.
type JWTIssuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewJWTIssuer(secret, issuer string) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// GenerateToken signs a token for user expiring exactly 24 hours after
// issuance, with subject = username and the role as the single group.
func (j *JWTIssuer) GenerateToken(user *domain.User) (string, error) {
	now := j.now().UTC()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Groups: []string{string(user.Role)},
		UserID: user.ID,
		Email:  user.Email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}
