package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/keyfold/authd/pkg/jwtx"
)

func newTokenService(t *testing.T) *TokenService {
	t.Helper()

	access, err := jwtx.NewSignerHS256([]byte("access-secret-for-tests"))
	require.NoError(t, err)
	refresh, err := jwtx.NewSignerHS256([]byte("refresh-secret-for-tests"))
	require.NoError(t, err)

	return &TokenService{
		AccessSigner:  access,
		RefreshSigner: refresh,
		Issuer:        "authd-test",
		AccessTTL:     jwtx.DefaultAccessTokenTTL,
		RefreshTTL:    jwtx.DefaultRefreshTokenTTL,
	}
}

func TestCreateTokenPair(t *testing.T) {
	t.Parallel()
	svc := newTokenService(t)

	pair, err := svc.CreateTokenPair(1)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	require.NotEqual(t, pair.Access, pair.Refresh)

	require.True(t, svc.VerifyAccess(pair.Access))

	claims, err := svc.AccessSigner.Verify(pair.Access)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.AccountID)
	require.Equal(t, "authd-test", claims.Issuer)

	// Independent expirations per token: refresh outlives access.
	refreshClaims, err := svc.RefreshSigner.Verify(pair.Refresh)
	require.NoError(t, err)
	require.True(t, refreshClaims.ExpiresAt.After(claims.ExpiresAt.Time))
}

func TestCrossKeyRejection(t *testing.T) {
	t.Parallel()
	svc := newTokenService(t)

	pair, err := svc.CreateTokenPair(7)
	require.NoError(t, err)

	// A refresh token is never a valid access token and vice versa.
	require.False(t, svc.VerifyAccess(pair.Refresh))

	_, err = svc.Refresh(pair.Access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRotation(t *testing.T) {
	t.Parallel()
	svc := newTokenService(t)

	pair, err := svc.CreateTokenPair(42)
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)
	require.True(t, svc.VerifyAccess(rotated.Access))

	claims, err := svc.AccessSigner.Verify(rotated.Access)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.AccountID)
}

func TestVerifyAccessNeverErrors(t *testing.T) {
	t.Parallel()
	svc := newTokenService(t)

	require.False(t, svc.VerifyAccess(""))
	require.False(t, svc.VerifyAccess("not-a-token"))
	require.False(t, svc.VerifyAccess("aaaa.bbbb.cccc"))
}

func TestExpiredTokensRejected(t *testing.T) {
	t.Parallel()
	svc := newTokenService(t)

	past := time.Now().UTC().Add(-2 * time.Hour)

	expiredAccess, err := svc.AccessSigner.Sign(jwtx.NewClaims(1, svc.Issuer, time.Hour, past))
	require.NoError(t, err)
	require.False(t, svc.VerifyAccess(expiredAccess))

	expiredRefresh, err := svc.RefreshSigner.Sign(jwtx.NewClaims(1, svc.Issuer, time.Hour, past))
	require.NoError(t, err)
	_, err = svc.Refresh(expiredRefresh)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	t.Parallel()
	svc := newTokenService(t)

	for _, token := range []string{"", "garbage", "aaaa.bbbb.cccc"} {
		_, err := svc.Refresh(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
