package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
)

// HS256Signer signs and verifies tokens with a single HMAC-SHA256
// secret. Access and refresh tokens each get their own signer holding
// independently configured secrets, so a token minted for one purpose
// never validates against the other.
type HS256Signer struct {
	secret []byte
}

func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty HS256 secret")
	}
	return &HS256Signer{secret: secret}, nil
}

// Sign produces a compact serialized token for the given claims.
func (s *HS256Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: signing failed: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token against this signer's secret.
// Validation covers the signature, the exp/nbf window, and pins the
// algorithm to HMAC so a token can never downgrade its own scheme.
func (s *HS256Signer) Verify(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidSig
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
}
