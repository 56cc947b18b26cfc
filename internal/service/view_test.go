package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyViewURL(t *testing.T) {
	t.Run("article path", func(t *testing.T) {
		kind, articleID, pagePath := ClassifyViewURL("/article/42")
		assert.Equal(t, VIEW_KIND_ARTICLE, kind)
		assert.Equal(t, int64(42), articleID)
		assert.Empty(t, pagePath)
	})

	t.Run("absolute article url", func(t *testing.T) {
		kind, articleID, _ := ClassifyViewURL("https://blog.example.com/article/7?ref=home")
		assert.Equal(t, VIEW_KIND_ARTICLE, kind)
		assert.Equal(t, int64(7), articleID)
	})

	t.Run("article path with garbage id", func(t *testing.T) {
		kind, articleID, _ := ClassifyViewURL("/article/not-a-number")
		assert.Equal(t, VIEW_KIND_SITE, kind)
		assert.Zero(t, articleID)
	})

	t.Run("page path", func(t *testing.T) {
		kind, _, pagePath := ClassifyViewURL("/about")
		assert.Equal(t, VIEW_KIND_PAGE, kind)
		assert.Equal(t, "about", pagePath)
	})

	t.Run("root is a site view", func(t *testing.T) {
		kind, _, pagePath := ClassifyViewURL("/")
		assert.Equal(t, VIEW_KIND_SITE, kind)
		assert.Empty(t, pagePath)
	})
}
