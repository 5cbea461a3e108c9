package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-job-board/internal/model"
)

func TestTokenRoundTripWithoutExpiry(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("user-1", "alice", 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenRoundTripWithTTL(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("user-1", "alice", time.Hour)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("user-1", "alice", time.Millisecond)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue("user-1", "alice", 0)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService("test-secret")

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(garbage)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	}
}

func TestTokenMissingSubjectRejected(t *testing.T) {
	svc := NewTokenService("test-secret")

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"iat":      time.Now().Unix(),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}
