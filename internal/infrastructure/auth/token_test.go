package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func newTestService() *TokenService {
	return NewTokenService(testSecret, time.Hour, "ferrisys-test")
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, err := svc.Generate(userID, "maria")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "maria", claims.Subject)
	assert.Equal(t, "ferrisys-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService()
	past := time.Now().Add(-2 * time.Hour)
	svc.WithClock(func() time.Time { return past })

	token, err := svc.Generate(uuid.New(), "maria")
	require.NoError(t, err)

	svc.WithClock(time.Now)
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateMalformedToken(t *testing.T) {
	svc := newTestService()

	for _, tokenString := range []string{
		"",
		"not-a-token",
		"aaa.bbb.ccc",
	} {
		_, err := svc.Validate(tokenString)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", tokenString)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := newTestService().Generate(uuid.New(), "maria")
	require.NoError(t, err)

	other := NewTokenService("a-completely-different-secret-value", time.Hour, "ferrisys-test")
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestInMemoryBlacklist(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// A non-positive TTL means the token already expired on its own
	require.NoError(t, bl.Revoke(ctx, "jti-2", -time.Second))
	revoked, err = bl.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}
