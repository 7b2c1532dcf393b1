package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected a bcrypt hash, got %q", hash)
	assert.NotContains(t, hash, "correct horse battery")
}

func TestHashPasswordTooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("supersecret1")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(hash, "supersecret1"))
	assert.ErrorIs(t, VerifyPassword(hash, "supersecret2"), ErrPasswordMismatch)
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("supersecret1")
	require.NoError(t, err)
	second, err := HashPassword("supersecret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestIsPasswordValid(t *testing.T) {
	assert.True(t, IsPasswordValid("12345678"))
	assert.False(t, IsPasswordValid("1234567"))
}
