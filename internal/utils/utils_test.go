package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateNumericCode(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Equal(t, "", strings.Trim(code, "0123456789"), "code must only contain digits")
	}

	_, err := GenerateNumericCode(0)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("anything", ""))
}

func TestUnusablePasswordNeverMatches(t *testing.T) {
	hash, err := UnusablePasswordHash()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "!"))
	assert.False(t, CheckPasswordHash("", hash))
	assert.False(t, CheckPasswordHash(hash, hash))
}

func TestTokenKeyHash(t *testing.T) {
	hash := HashTokenKey("abc123")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashTokenKey("abc123"))
	assert.NotEqual(t, hash, HashTokenKey("abc124"))
}

func TestAuthTokenJWTRoundTrip(t *testing.T) {
	signed, err := GenerateAuthTokenJWT("user-1", "key-1", "test-secret", "blog-test")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(signed, "test-secret", "blog-test")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "key-1", claims.ID)
	assert.Nil(t, claims.ExpiresAt, "auth tokens do not expire")
}

func TestParseAndValidateJWTRejects(t *testing.T) {
	signed, err := GenerateAuthTokenJWT("user-1", "key-1", "test-secret", "blog-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(signed, "other-secret", "blog-test")
	assert.Error(t, err, "wrong secret")

	_, err = ParseAndValidateJWT(signed, "test-secret", "someone-else")
	assert.Error(t, err, "wrong issuer")

	noKey, err := GenerateAuthTokenJWT("user-1", "", "test-secret", "blog-test")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(noKey, "test-secret", "blog-test")
	assert.ErrorIs(t, err, ErrMissingTokenKey)
}
