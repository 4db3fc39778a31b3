package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nes268/healmate/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)
	user := &model.User{ID: 42, Email: "alice@example.com"}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.NotEmpty(t, claims.TokenID)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := &model.User{ID: 1, Email: "a@example.com"}

	first, err := svc.GenerateToken(user)
	require.NoError(t, err)
	second, err := svc.GenerateToken(user)
	require.NoError(t, err)

	c1, err := svc.ValidateToken(first)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(second)
	require.NoError(t, err)
	require.NotEqual(t, c1.TokenID, c2.TokenID)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)
	token, err := svc.GenerateToken(&model.User{ID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewJWTService("secret-one", time.Hour)
	verifier := NewJWTService("secret-two", time.Hour)

	token, err := issuer.GenerateToken(&model.User{ID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	_, err := svc.ValidateToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMemoryRevoker(t *testing.T) {
	revoker := NewMemoryRevoker()
	ctx := context.Background()

	revoked, err := revoker.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, revoker.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = revoker.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestMemoryRevokerIgnoresExpiredTokens(t *testing.T) {
	revoker := NewMemoryRevoker()
	ctx := context.Background()

	// nothing left to revoke on an already-expired token
	require.NoError(t, revoker.Revoke(ctx, "jti-2", 0))

	revoked, err := revoker.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	require.False(t, revoked)
}
