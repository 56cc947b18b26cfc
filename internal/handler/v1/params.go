package handler

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/reactpress/reactpress/internal/service"
)

const (
	SORTING_QUERY_PARAM_NAME   = "sort"
	STATUS_QUERY_PARAM_NAME    = "status"
	CATEGORY_QUERY_PARAM_NAME  = "category"
	TAG_QUERY_PARAM_NAME       = "tag"
	KEYWORD_QUERY_PARAM_NAME   = "keyword"
	PASS_QUERY_PARAM_NAME      = "pass"
	PAGE_QUERY_PARAM_NAME      = "page"
	PAGE_SIZE_QUERY_PARAM_NAME = "page_size"
)

var ErrUnsupportedQueryParam = errors.New("")

func getIDUrlParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.Join(fmt.Errorf("unsupported `id` url value %s. Support only numbers", chi.URLParam(r, "id")), ErrUnsupportedQueryParam)
	}
	return id, nil
}

func getArticleSortingQuery(r *http.Request, defaultVal service.ArticleSorting) (service.ArticleSorting, error) {
	sortingParam := r.URL.Query().Get(SORTING_QUERY_PARAM_NAME)
	switch service.ArticleSorting(sortingParam) {
	case service.ARTICLE_SORTING_NEWEST:
		return service.ARTICLE_SORTING_NEWEST, nil
	case service.ARTICLE_SORTING_OLDEST:
		return service.ARTICLE_SORTING_OLDEST, nil
	case "":
		return defaultVal, nil
	default:
		return "", errors.Join(fmt.Errorf("unsupported `%s` query value %s", SORTING_QUERY_PARAM_NAME, sortingParam), ErrUnsupportedQueryParam)
	}
}

func getPageQuery(r *http.Request, defaultPage int) (int, error) {
	pageStr := r.URL.Query().Get(PAGE_QUERY_PARAM_NAME)
	if pageStr == "" {
		return defaultPage, nil
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return -1, errors.Join(fmt.Errorf("unsupported `%s` page value %s. Support only positive numbers", PAGE_QUERY_PARAM_NAME, pageStr), ErrUnsupportedQueryParam)
	}
	return page, nil
}

func getPageSizeQuery(r *http.Request, defaultPageSize int) (int, error) {
	pageSizeStr := r.URL.Query().Get(PAGE_SIZE_QUERY_PARAM_NAME)
	if pageSizeStr == "" {
		return defaultPageSize, nil
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		return -1, errors.Join(fmt.Errorf("unsupported `%s` page size value %s. Support only positive numbers", PAGE_SIZE_QUERY_PARAM_NAME, pageSizeStr), ErrUnsupportedQueryParam)
	}
	return pageSize, nil
}

func getStatusQuery(r *http.Request) (string, error) {
	status := r.URL.Query().Get(STATUS_QUERY_PARAM_NAME)
	switch status {
	case "", "draft", "publish":
		return status, nil
	default:
		return "", errors.Join(fmt.Errorf("unsupported `%s` query value %s", STATUS_QUERY_PARAM_NAME, status), ErrUnsupportedQueryParam)
	}
}

// getPassQuery reads the moderation filter: 0 pending, 1 passed, absent => any.
func getPassQuery(r *http.Request) (int64, error) {
	passStr := r.URL.Query().Get(PASS_QUERY_PARAM_NAME)
	switch passStr {
	case "":
		return service.COMMENT_PASS_ANY, nil
	case "0", "false":
		return service.COMMENT_PASS_PENDING, nil
	case "1", "true":
		return service.COMMENT_PASS_PASSED, nil
	default:
		return 0, errors.Join(fmt.Errorf("unsupported `%s` query value %s", PASS_QUERY_PARAM_NAME, passStr), ErrUnsupportedQueryParam)
	}
}

// remoteIP prefers the reverse-proxy header chi's RealIP middleware folds
// into RemoteAddr. RealIP leaves a bare IP with no port, so splitting may
// fail; the raw value is kept in that case, IPv6 included.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
