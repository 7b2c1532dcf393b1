package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret-key",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "test-issuer",
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	m := testJWTManager()

	token, jti, err := m.GenerateAccessToken(42, "admin@example.com", 3)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, jti, claims.ID)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestGenerateRefreshToken(t *testing.T) {
	m := testJWTManager()

	token, _, err := m.GenerateRefreshToken(7, "admin@example.com", 0)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	m := testJWTManager()
	token, _, err := m.GenerateAccessToken(1, "admin@example.com", 0)
	require.NoError(t, err)

	other := NewJWTManager(JWTConfig{
		Secret:        "different-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "test-issuer",
	})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	m := NewJWTManager(JWTConfig{
		Secret:        "test-secret-key",
		Expiry:        -time.Minute,
		RefreshExpiry: -time.Minute,
		Issuer:        "test-issuer",
	})

	token, _, err := m.GenerateAccessToken(1, "admin@example.com", 0)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateGarbageToken(t *testing.T) {
	m := testJWTManager()
	_, err := m.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessToken(t *testing.T) {
	m := testJWTManager()

	refresh, _, err := m.GenerateRefreshToken(9, "admin@example.com", 2)
	require.NoError(t, err)

	access, jti, err := m.RefreshAccessToken(refresh, 2)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := m.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, uint(9), claims.AdminID)
}

func TestRefreshAccessTokenRejectsAccessToken(t *testing.T) {
	m := testJWTManager()

	access, _, err := m.GenerateAccessToken(9, "admin@example.com", 0)
	require.NoError(t, err)

	_, _, err = m.RefreshAccessToken(access, 0)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUniqueJTIs(t *testing.T) {
	m := testJWTManager()

	_, first, err := m.GenerateAccessToken(1, "admin@example.com", 0)
	require.NoError(t, err)
	_, second, err := m.GenerateAccessToken(1, "admin@example.com", 0)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
