package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/keyfold/authd/pkg/idx"
)

// Default token TTLs. Access tokens are short-lived; refresh tokens
// live long enough to mint a new pair without re-entering credentials.
const (
	DefaultAccessTokenTTL  = 1 * time.Hour
	DefaultRefreshTokenTTL = 12 * time.Hour
)

// Claims is the payload carried by both access and refresh tokens.
// We keep changes additive to preserve compatibility for issued tokens.
type Claims struct {
	jwt.RegisteredClaims

	// AccountID identifies the authenticated account. Serialized as
	// "id" on the wire.
	AccountID int64 `json:"id"`
}

// NewClaims builds minimally-correct claims for an account. Each call
// produces an independent value so stamping different expirations on
// the access and refresh tokens never aliases.
func NewClaims(accountID int64, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		AccountID: accountID,
	}
}
