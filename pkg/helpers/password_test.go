package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Password1!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password1!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)

	assert.True(t, CompareHashAndPassword(hash, "Password1!"))
	assert.False(t, CompareHashAndPassword(hash, "Password1?"))
	assert.False(t, CompareHashAndPassword(hash, ""))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("Password1!")
	require.NoError(t, err)
	h2, err := HashPassword("Password1!")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCompareHashAndPassword_NotAHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-hash", "Password1!"))
}
