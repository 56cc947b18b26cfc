package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := NewHTTPConfig()
		require.NoError(t, err)
		assert.Equal(t, ":5002", config.Addr())
		assert.Equal(t, "http://localhost:3000", config.ClientURL)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("CLIENT_URL", "https://blog.example.com")

		config, err := NewHTTPConfig()
		require.NoError(t, err)
		assert.Equal(t, ":8080", config.Addr())
		assert.Equal(t, "https://blog.example.com", config.ClientURL)
	})
}

func TestDatabaseConfigGetDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "blog")
	t.Setenv("DB_PASSWD", "secret")
	t.Setenv("DB_DATABASE", "blog")

	config, err := NewDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "blog:secret@tcp(db.internal:3307)/blog?parseTime=true&multiStatements=true", config.GetDSN())
}

func TestNewFileConfig(t *testing.T) {
	config, err := NewFileConfig()
	require.NoError(t, err)
	assert.Equal(t, "./uploads", config.Dir)
	assert.Equal(t, "/uploads", config.BaseURL)
}

func TestNewNatsConfig(t *testing.T) {
	t.Setenv("NATS_HOST", "nats.internal")
	t.Setenv("NATS_PORT", "4223")

	config, err := NewNatsConfig()
	require.NoError(t, err)
	assert.Equal(t, "nats://nats.internal:4223", config.GetURL())
}
