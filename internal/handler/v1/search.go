package handler

import (
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/pkg/httputils"
	"github.com/reactpress/reactpress/pkg/paginationutils"
	"go.uber.org/fx"
)

type searchHandler struct {
	searchService *service.SearchService
}

func (hand *searchHandler) SearchArticles(w http.ResponseWriter, r *http.Request) {
	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		searchErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		searchErrHandler(w, err)
		return
	}

	articles, err := hand.searchService.SearchArticles(r.Context(), service.SearchArticlesParams{
		Keyword:  r.URL.Query().Get(KEYWORD_QUERY_PARAM_NAME),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		searchErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, articles)
}

type getSearchRecordsResponse struct {
	Records []model.SearchRecord             `json:"records"`
	Pages   []paginationutils.PaginationLink `json:"pages"`
}

func (hand *searchHandler) GetSearchRecords(w http.ResponseWriter, r *http.Request) {
	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		searchErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		searchErrHandler(w, err)
		return
	}

	records, err := hand.searchService.GetSearchRecords(r.Context(), service.GetSearchRecordsParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		searchErrHandler(w, err)
		return
	}

	recordsCount, err := hand.searchService.GetSearchRecordsCount(r.Context())
	if err != nil {
		searchErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       pageSize,
		ItemsCount:         recordsCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(page)
	if err != nil {
		searchErrHandler(w, err)
		return
	}

	httputils.WriteJSON(w, http.StatusOK, &getSearchRecordsResponse{
		Records: records,
		Pages:   pagesLinks,
	})
}

func (hand *searchHandler) DeleteSearchRecord(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		searchErrHandler(w, err)
		return
	}

	if err := hand.searchService.DeleteSearchRecord(r.Context(), id); err != nil {
		searchErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *searchHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/search/articles", hand.SearchArticles)
		r.Get(baseURL+"/search/records", hand.GetSearchRecords)
		r.Delete(baseURL+"/search/records/{id}", hand.DeleteSearchRecord)
	}
}

var _ httputils.Handler = (*searchHandler)(nil)

func searchErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyKeyword):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrArticlesNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewSearchHandlerParams struct {
	fx.In

	SearchService *service.SearchService
}

func NewSearchHandler(params NewSearchHandlerParams) *searchHandler {
	return &searchHandler{
		searchService: params.SearchService,
	}
}
