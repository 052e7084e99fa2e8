package auth_test

import (
	"strings"
	"testing"

	"github.com/agriformation/backoffice/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.NotContains(t, hash, "correct horse battery")

	t.Run("matching password", func(t *testing.T) {
		ok, err := hasher.Verify("correct horse battery", hash)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		ok, err := hasher.Verify("wrong", hash)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("salted", func(t *testing.T) {
		again, err := hasher.Hash("correct horse battery")
		require.NoError(t, err)
		assert.NotEqual(t, hash, again)
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := hasher.Verify("x", "plain-text")
		assert.Error(t, err)

		_, err = hasher.Verify("x", "$bcrypt$v=19$m=1,t=1,p=1$AA$AA")
		assert.Error(t, err)
	})
}

func TestTemporaryPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		p, err := auth.TemporaryPassword(12)
		require.NoError(t, err)
		assert.Len(t, p, 12)
		assert.NotContainsf(t, p, "0", "look-alike glyph in %q", p)
		assert.NotContainsf(t, p, "O", "look-alike glyph in %q", p)
		seen[p] = true
	}
	assert.Greater(t, len(seen), 1)
}
