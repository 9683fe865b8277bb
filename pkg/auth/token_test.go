package auth

import (
	"testing"
	"time"

	"github.com/example/foodcourt/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenManager(&config.JWTConfig{Secret: "test-secret", TTL: time.Hour})

	token, err := tokens.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyExpired(t *testing.T) {
	tokens := NewTokenManager(&config.JWTConfig{Secret: "test-secret", TTL: -time.Minute})

	token, err := tokens.Issue("user-123")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager(&config.JWTConfig{Secret: "test-secret", TTL: time.Hour})

	_, err := tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager(&config.JWTConfig{Secret: "secret-a", TTL: time.Hour})
	verifier := NewTokenManager(&config.JWTConfig{Secret: "secret-b", TTL: time.Hour})

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
