package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestWithQuery(t *testing.T, rawQuery string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "/api/v1/articles?"+rawQuery, nil)
}

func newRequestWithIDParam(t *testing.T, id string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/articles/"+id, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestGetIDUrlParam(t *testing.T) {
	t.Run("numeric id", func(t *testing.T) {
		id, err := getIDUrlParam(newRequestWithIDParam(t, "42"))
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("garbage id", func(t *testing.T) {
		_, err := getIDUrlParam(newRequestWithIDParam(t, "forty-two"))
		assert.ErrorIs(t, err, ErrUnsupportedQueryParam)
	})
}

func TestGetArticleSortingQuery(t *testing.T) {
	t.Run("default when absent", func(t *testing.T) {
		sorting, err := getArticleSortingQuery(newRequestWithQuery(t, ""), service.ARTICLE_SORTING_NEWEST)
		require.NoError(t, err)
		assert.Equal(t, service.ARTICLE_SORTING_NEWEST, sorting)
	})

	t.Run("oldest", func(t *testing.T) {
		sorting, err := getArticleSortingQuery(newRequestWithQuery(t, "sort=oldest"), service.ARTICLE_SORTING_NEWEST)
		require.NoError(t, err)
		assert.Equal(t, service.ARTICLE_SORTING_OLDEST, sorting)
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := getArticleSortingQuery(newRequestWithQuery(t, "sort=shuffled"), service.ARTICLE_SORTING_NEWEST)
		assert.ErrorIs(t, err, ErrUnsupportedQueryParam)
	})
}

func TestGetPageQuery(t *testing.T) {
	t.Run("default when absent", func(t *testing.T) {
		page, err := getPageQuery(newRequestWithQuery(t, ""), service.DEFAULT_PAGE)
		require.NoError(t, err)
		assert.Equal(t, service.DEFAULT_PAGE, page)
	})

	t.Run("explicit page", func(t *testing.T) {
		page, err := getPageQuery(newRequestWithQuery(t, "page=3"), service.DEFAULT_PAGE)
		require.NoError(t, err)
		assert.Equal(t, 3, page)
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		_, err := getPageQuery(newRequestWithQuery(t, "page=0"), service.DEFAULT_PAGE)
		assert.ErrorIs(t, err, ErrUnsupportedQueryParam)

		_, err = getPageQuery(newRequestWithQuery(t, "page=-2"), service.DEFAULT_PAGE)
		assert.ErrorIs(t, err, ErrUnsupportedQueryParam)
	})
}

func TestGetPageSizeQuery(t *testing.T) {
	pageSize, err := getPageSizeQuery(newRequestWithQuery(t, "page_size=30"), service.DEFAULT_PAGE_SIZE)
	require.NoError(t, err)
	assert.Equal(t, 30, pageSize)

	_, err = getPageSizeQuery(newRequestWithQuery(t, "page_size=lots"), service.DEFAULT_PAGE_SIZE)
	assert.ErrorIs(t, err, ErrUnsupportedQueryParam)
}

func TestGetStatusQuery(t *testing.T) {
	status, err := getStatusQuery(newRequestWithQuery(t, "status=publish"))
	require.NoError(t, err)
	assert.Equal(t, "publish", status)

	status, err = getStatusQuery(newRequestWithQuery(t, ""))
	require.NoError(t, err)
	assert.Empty(t, status)

	_, err = getStatusQuery(newRequestWithQuery(t, "status=archived"))
	assert.ErrorIs(t, err, ErrUnsupportedQueryParam)
}

func TestGetPassQuery(t *testing.T) {
	pass, err := getPassQuery(newRequestWithQuery(t, ""))
	require.NoError(t, err)
	assert.Equal(t, service.COMMENT_PASS_ANY, pass)

	pass, err = getPassQuery(newRequestWithQuery(t, "pass=true"))
	require.NoError(t, err)
	assert.Equal(t, service.COMMENT_PASS_PASSED, pass)

	pass, err = getPassQuery(newRequestWithQuery(t, "pass=0"))
	require.NoError(t, err)
	assert.Equal(t, service.COMMENT_PASS_PENDING, pass)

	_, err = getPassQuery(newRequestWithQuery(t, "pass=maybe"))
	assert.ErrorIs(t, err, ErrUnsupportedQueryParam)
}

func TestRemoteIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:51234"
	assert.Equal(t, "203.0.113.7", remoteIP(r))

	r.RemoteAddr = "203.0.113.7"
	assert.Equal(t, "203.0.113.7", remoteIP(r))

	r.RemoteAddr = "[2001:db8::1]:51234"
	assert.Equal(t, "2001:db8::1", remoteIP(r))

	r.RemoteAddr = "2001:db8::1"
	assert.Equal(t, "2001:db8::1", remoteIP(r))
}
