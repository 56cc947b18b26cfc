package paginationutils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T, itemsCount, itemsPerPage int) *PaginationView {
	t.Helper()
	u, err := url.Parse("/api/v1/articles?status=publish")
	require.NoError(t, err)
	return NewPaginationView(*u, NewPaginationViewParams{
		ItemsPerPage:       itemsPerPage,
		ItemsCount:         itemsCount,
		PageQueryParamName: "page",
	})
}

func TestTotalPages(t *testing.T) {
	t.Run("rounds up", func(t *testing.T) {
		view := newTestView(t, 25, 12)
		assert.Equal(t, 3, view.TotalPages())
	})

	t.Run("exact division", func(t *testing.T) {
		view := newTestView(t, 24, 12)
		assert.Equal(t, 2, view.TotalPages())
	})

	t.Run("zero items per page", func(t *testing.T) {
		view := newTestView(t, 24, 0)
		assert.Equal(t, 0, view.TotalPages())
	})
}

func TestPagesLinks(t *testing.T) {
	t.Run("empty result set has no links", func(t *testing.T) {
		view := newTestView(t, 0, 12)
		links, err := view.PagesLinks(1)
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("page out of range", func(t *testing.T) {
		view := newTestView(t, 12, 12)
		_, err := view.PagesLinks(2)
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("short row has no placeholders", func(t *testing.T) {
		view := newTestView(t, 36, 12)
		links, err := view.PagesLinks(2)
		require.NoError(t, err)

		require.Len(t, links, 3)
		for _, link := range links {
			assert.False(t, link.Placeholder)
		}
		assert.Equal(t, "1", links[0].PageNumber)
		assert.Equal(t, "3", links[2].PageNumber)
	})

	t.Run("middle page collapses both sides", func(t *testing.T) {
		view := newTestView(t, 120, 12)
		links, err := view.PagesLinks(5)
		require.NoError(t, err)

		// 1 ... 4 [5] 6 ... 10
		require.Len(t, links, 7)
		assert.Equal(t, "1", links[0].PageNumber)
		assert.True(t, links[1].Placeholder)
		assert.Equal(t, "4", links[2].PageNumber)
		assert.Equal(t, "5", links[3].PageNumber)
		assert.Equal(t, "6", links[4].PageNumber)
		assert.True(t, links[5].Placeholder)
		assert.Equal(t, "10", links[6].PageNumber)
	})

	t.Run("keeps other query params in links", func(t *testing.T) {
		view := newTestView(t, 36, 12)
		links, err := view.PagesLinks(1)
		require.NoError(t, err)

		parsed, err := url.Parse(links[1].Link)
		require.NoError(t, err)
		assert.Equal(t, "publish", parsed.Query().Get("status"))
		assert.Equal(t, "2", parsed.Query().Get("page"))
	})
}
