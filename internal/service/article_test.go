package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAccessPassword(t *testing.T) {
	t.Run("empty password stays unset", func(t *testing.T) {
		hash, err := hashAccessPassword("")
		require.NoError(t, err)
		assert.False(t, hash.Valid)
	})

	t.Run("accepts the right password", func(t *testing.T) {
		hash, err := hashAccessPassword("letmein")
		require.NoError(t, err)
		require.True(t, hash.Valid)
		assert.NotEqual(t, "letmein", hash.String)

		err = bcrypt.CompareHashAndPassword([]byte(hash.String), []byte("letmein"))
		assert.NoError(t, err)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		hash, err := hashAccessPassword("letmein")
		require.NoError(t, err)
		require.True(t, hash.Valid)

		err = bcrypt.CompareHashAndPassword([]byte(hash.String), []byte("guess"))
		assert.Error(t, err)
	})
}
