package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reactpress/reactpress/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindRequest(t *testing.T) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodPost, "/api/v1/articles", nil)
}

func TestArticlePayloadBind(t *testing.T) {
	t.Run("requires title", func(t *testing.T) {
		payload := &ArticlePayload{}
		assert.Error(t, payload.Bind(bindRequest(t)))
	})

	t.Run("defaults status to draft", func(t *testing.T) {
		payload := &ArticlePayload{Title: "Hello"}
		require.NoError(t, payload.Bind(bindRequest(t)))
		assert.Equal(t, model.ARTICLE_STATUS_DRAFT, payload.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		payload := &ArticlePayload{Title: "Hello", Status: "archived"}
		assert.Error(t, payload.Bind(bindRequest(t)))
	})

	t.Run("parses published_at", func(t *testing.T) {
		payload := &ArticlePayload{Title: "Hello", PublishedAt: "2024-10-12T09:30"}
		require.NoError(t, payload.Bind(bindRequest(t)))
		require.True(t, payload.publishedAt.Valid)
		assert.Equal(t, 2024, payload.publishedAt.Time.Year())
	})

	t.Run("rejects malformed published_at", func(t *testing.T) {
		payload := &ArticlePayload{Title: "Hello", PublishedAt: "last tuesday"}
		assert.Error(t, payload.Bind(bindRequest(t)))
	})
}

func TestArticleLikePayloadBind(t *testing.T) {
	t.Run("defaults to a single like", func(t *testing.T) {
		payload := &ArticleLikePayload{}
		require.NoError(t, payload.Bind(bindRequest(t)))
		assert.Equal(t, int64(1), payload.Delta)
	})

	t.Run("clamps to one step", func(t *testing.T) {
		payload := &ArticleLikePayload{Delta: 100}
		require.NoError(t, payload.Bind(bindRequest(t)))
		assert.Equal(t, int64(1), payload.Delta)

		payload = &ArticleLikePayload{Delta: -100}
		require.NoError(t, payload.Bind(bindRequest(t)))
		assert.Equal(t, int64(-1), payload.Delta)
	})
}

func TestPagePayloadBind(t *testing.T) {
	payload := &PagePayload{Name: "About"}
	assert.Error(t, payload.Bind(bindRequest(t)), "path is required")

	payload = &PagePayload{Name: "About", Path: "about"}
	require.NoError(t, payload.Bind(bindRequest(t)))
	assert.Equal(t, model.ARTICLE_STATUS_DRAFT, payload.Status)
}

func TestUserPayloadBind(t *testing.T) {
	payload := &NewUserPayload{Name: "alice"}
	assert.Error(t, payload.Bind(bindRequest(t)), "password is required")

	payload = &NewUserPayload{Name: "alice", Password: "secret", Role: "superuser"}
	assert.Error(t, payload.Bind(bindRequest(t)), "unknown role")

	payload = &NewUserPayload{Name: "alice", Password: "secret", Role: model.USER_ROLE_ADMIN}
	assert.NoError(t, payload.Bind(bindRequest(t)))
}
