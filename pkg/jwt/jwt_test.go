package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiry time.Duration) *Service {
	return NewService("test-secret", "chat-mvp", "chat-mvp-client", expiry)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken("aecio")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "aecio", claims.Username)
	assert.Equal(t, "chat-mvp", claims.Issuer)
}

func TestTokenPreservesUsernameCase(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken("AeCiO")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "AeCiO", claims.Username)
}

func TestExpiredTokenRejected(t *testing.T) {
	// Negative expiry produces a token that is already past its deadline
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken("roberta")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenSignedWithDifferentSecretRejected(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewService("other-secret", "chat-mvp", "chat-mvp-client", time.Hour)

	token, err := other.GenerateToken("aecio")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWithWrongIssuerRejected(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewService("test-secret", "someone-else", "chat-mvp-client", time.Hour)

	token, err := other.GenerateToken("aecio")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
