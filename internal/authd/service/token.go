package service

import (
	"time"

	"github.com/keyfold/authd/internal/authd/domain"
	"github.com/keyfold/authd/pkg/jwtx"
)

// TokenService mints and validates access/refresh token pairs. Tokens
// carry no server-side state: validity is signature correctness plus
// the embedded expiration, nothing else.
type TokenService struct {
	AccessSigner  *jwtx.HS256Signer
	RefreshSigner *jwtx.HS256Signer
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// CreateTokenPair mints a fresh access/refresh pair for an account.
// Each token gets its own claims value and expiration window.
func (s *TokenService) CreateTokenPair(accountID int64) (domain.TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.AccessSigner.Sign(jwtx.NewClaims(accountID, s.Issuer, s.AccessTTL, now))
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh, err := s.RefreshSigner.Sign(jwtx.NewClaims(accountID, s.Issuer, s.RefreshTTL, now))
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// VerifyAccess reports whether the token is a currently valid access
// token. Malformed, expired, and mis-signed tokens are all just false.
func (s *TokenService) VerifyAccess(token string) bool {
	_, err := s.AccessSigner.Verify(token)
	return err == nil
}

// Refresh validates a refresh token and rotates it into a brand-new
// pair carrying the same account id. The old refresh token is not
// revoked; the stateless scheme relies on its expiration.
func (s *TokenService) Refresh(token string) (domain.TokenPair, error) {
	claims, err := s.RefreshSigner.Verify(token)
	if err != nil {
		return domain.TokenPair{}, ErrInvalidToken
	}

	return s.CreateTokenPair(claims.AccountID)
}
