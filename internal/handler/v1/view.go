package handler

import (
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/pkg/httputils"
	"github.com/reactpress/reactpress/pkg/paginationutils"
	"go.uber.org/fx"
)

const URL_QUERY_PARAM_NAME = "url"

type ViewPayload struct {
	URL string `json:"url"`
}

func (p *ViewPayload) Bind(r *http.Request) error {
	if p.URL == "" {
		return errors.New("missing required view url")
	}
	return nil
}

type viewHandler struct {
	viewService *service.ViewService
}

type getViewsResponse struct {
	Views []model.View                     `json:"views"`
	Pages []paginationutils.PaginationLink `json:"pages"`
}

func (hand *viewHandler) GetViews(w http.ResponseWriter, r *http.Request) {
	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		viewErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		viewErrHandler(w, err)
		return
	}

	views, err := hand.viewService.GetViews(r.Context(), service.GetViewsParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		viewErrHandler(w, err)
		return
	}

	viewsCount, err := hand.viewService.GetViewsCount(r.Context())
	if err != nil {
		viewErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       pageSize,
		ItemsCount:         viewsCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(page)
	if err != nil {
		viewErrHandler(w, err)
		return
	}

	httputils.WriteJSON(w, http.StatusOK, &getViewsResponse{
		Views: views,
		Pages: pagesLinks,
	})
}

// GetViewCountByURL answers "how many views does this url have" from the
// KV cache when it is warm.
func (hand *viewHandler) GetViewCountByURL(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get(URL_QUERY_PARAM_NAME)
	if rawURL == "" {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "missing required `url` query param")
		return
	}

	count, err := hand.viewService.GetViewCountByURL(r.Context(), rawURL)
	if err != nil {
		viewErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (hand *viewHandler) RegisterView(w http.ResponseWriter, r *http.Request) {
	payload := &ViewPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := hand.viewService.RegisterView(r.Context(), service.RegisterViewParams{
		URL:       payload.URL,
		IP:        remoteIP(r),
		UserAgent: r.UserAgent(),
	}); err != nil {
		viewErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (hand *viewHandler) DeleteView(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		viewErrHandler(w, err)
		return
	}

	if err := hand.viewService.DeleteView(r.Context(), id); err != nil {
		viewErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *viewHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/views", hand.GetViews)
		r.Post(baseURL+"/views", hand.RegisterView)
		r.Get(baseURL+"/views/url", hand.GetViewCountByURL)
		r.Delete(baseURL+"/views/{id}", hand.DeleteView)
	}
}

var _ httputils.Handler = (*viewHandler)(nil)

func viewErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrViewNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnablePublishView):
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewViewHandlerParams struct {
	fx.In

	ViewService *service.ViewService
}

func NewViewHandler(params NewViewHandlerParams) *viewHandler {
	return &viewHandler{
		viewService: params.ViewService,
	}
}
