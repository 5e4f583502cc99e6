package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, err := tm.GenerateAccessToken(4, "user@test.com", "ANALYST")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(4), claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, "ANALYST", claims.Role)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	other := NewTokenManager("other-secret", 60)

	token, err := tm.GenerateAccessToken(4, "user@test.com", "CLIENT")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := &tokenManager{secret: []byte("test-secret"), expiry: -time.Minute}

	token, err := tm.GenerateAccessToken(4, "user@test.com", "CLIENT")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
