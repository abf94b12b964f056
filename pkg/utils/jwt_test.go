package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	claims := TokenClaims{
		UserID: "0b0f9a0e-2f5d-4a37-9f5e-1f7f0c1f8a11",
		Email:  "alice@example.com",
		Role:   "USER",
	}

	token, err := GenerateToken(claims, "secret", 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Role, parsed.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(TokenClaims{UserID: "abc", Email: "a@b.c", Role: "USER"}, "secret", 24)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateToken("", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
