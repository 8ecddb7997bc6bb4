package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	manager := NewManager("test-secret", "test-issuer", time.Hour)

	token, exp, err := manager.Issue("user-1", "owner@example.com")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	ident, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", ident.ID)
	assert.Equal(t, "owner@example.com", ident.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", "test-issuer", time.Hour)
	verifier := NewManager("secret-b", "test-issuer", time.Hour)

	token, _, err := issuer.Issue("user-1", "owner@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid token")
}

func TestVerify_ExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", "test-issuer", -time.Minute)

	token, _, err := manager.Issue("user-1", "owner@example.com")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	manager := NewManager("test-secret", "test-issuer", time.Hour)

	_, err := manager.Verify("не-токен")
	require.Error(t, err)
}

func TestVerify_MissingIdentityClaims(t *testing.T) {
	manager := NewManager("test-secret", "test-issuer", time.Hour)

	// Токен без email
	token, _, err := manager.Issue("user-1", "")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing identity claims")
}
