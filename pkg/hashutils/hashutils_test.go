package hashutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCacheKey(t *testing.T) {
	t.Run("stable for same parts", func(t *testing.T) {
		assert.Equal(t, GetCacheKey("publish", "golang"), GetCacheKey("publish", "golang"))
	})

	t.Run("differs for different parts", func(t *testing.T) {
		assert.NotEqual(t, GetCacheKey("publish"), GetCacheKey("draft"))
	})

	t.Run("order matters", func(t *testing.T) {
		assert.NotEqual(t, GetCacheKey("a", "b"), GetCacheKey("b", "a"))
	})

	t.Run("hex encoded sha256", func(t *testing.T) {
		assert.Len(t, GetCacheKey("anything"), 64)
	})
}
