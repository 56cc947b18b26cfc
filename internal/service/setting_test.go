package service

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredSMTPPass(t *testing.T) {
	t.Run("keeps the stored password", func(t *testing.T) {
		pass, err := storedSMTPPass("hunter2", nil)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", pass)
	})

	t.Run("stores empty when no settings row exists", func(t *testing.T) {
		pass, err := storedSMTPPass("", sql.ErrNoRows)
		require.NoError(t, err)
		assert.Empty(t, pass)
	})

	t.Run("propagates lookup failures", func(t *testing.T) {
		lookupErr := errors.New("connection reset")
		_, err := storedSMTPPass("", lookupErr)
		assert.ErrorIs(t, err, lookupErr)
	})
}
