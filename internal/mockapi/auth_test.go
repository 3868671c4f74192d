// internal/mockapi/auth_test.go
package mockapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, salt, err := hashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEmpty(t, salt)

	ok, err := verifyPassword("password123", salt, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword("password124", salt, hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHashesAreSalted(t *testing.T) {
	hashA, _, err := hashPassword("password123")
	require.NoError(t, err)
	hashB, _, err := hashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &User{ID: "u1", Email: "a@b.c", Name: "A", Role: "member"}

	token, err := issueToken(secret, user, time.Now())
	require.NoError(t, err)

	subject, err := parseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", subject)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	user := &User{ID: "u1"}
	token, err := issueToken([]byte("secret-a"), user, time.Now())
	require.NoError(t, err)

	_, err = parseToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	secret := []byte("test-secret")
	user := &User{ID: "u1"}
	token, err := issueToken(secret, user, time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	_, err = parseToken(secret, token)
	assert.Error(t, err)
}
