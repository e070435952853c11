// internal/auth/auth_test.go
package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/pelycan/api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	t.Run("round trip", func(t *testing.T) {
		hash, err := hasher.Hash("motdepasse")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

		ok, err := hasher.Verify("motdepasse", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		hash, err := hasher.Hash("motdepasse")
		require.NoError(t, err)

		ok, err := hasher.Verify("autre", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("salting makes hashes unique", func(t *testing.T) {
		h1, err := hasher.Hash("motdepasse")
		require.NoError(t, err)
		h2, err := hasher.Hash("motdepasse")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("garbage hash is an error", func(t *testing.T) {
		_, err := hasher.Verify("motdepasse", "pas-un-hash")
		assert.Error(t, err)
	})
}

func TestTokenManager(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	t.Run("round trip keeps the identity claims", func(t *testing.T) {
		token, err := tm.Generate("user-123", "sophie@example.com", "pro")
		require.NoError(t, err)

		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "sophie@example.com", claims.Email)
		assert.Equal(t, "pro", claims.Role)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenManager("other_secret", time.Hour)
		token, err := other.Generate("user-123", "sophie@example.com", "user")
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := auth.NewTokenManager("test_secret", -time.Minute)
		token, err := expired.Generate("user-123", "sophie@example.com", "user")
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := tm.Validate("pas.un.jeton")
		assert.Error(t, err)
	})
}
