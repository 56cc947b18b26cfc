package handler

import (
	"database/sql"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/pkg/dateutils"
	"github.com/reactpress/reactpress/pkg/httputils"
	"github.com/reactpress/reactpress/pkg/paginationutils"
	"github.com/reactpress/reactpress/pkg/sqlutils"
	"go.uber.org/fx"
)

type PagePayload struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Cover       string `json:"cover"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	Order       int32  `json:"order"`
	PublishedAt string `json:"published_at"`

	publishedAt sql.NullTime
}

func (p *PagePayload) Bind(r *http.Request) error {
	if p.Name == "" || p.Path == "" {
		return errors.New("missing required page name or path")
	}

	switch p.Status {
	case "":
		p.Status = model.ARTICLE_STATUS_DRAFT
	case model.ARTICLE_STATUS_DRAFT, model.ARTICLE_STATUS_PUBLISH:
	default:
		return errors.New("unsupported page status: " + p.Status)
	}

	if p.PublishedAt != "" {
		t, err := dateutils.ParseQueryString(p.PublishedAt)
		if err != nil {
			return err
		}
		p.publishedAt = sqlutils.GetNullableSqlTime(t)
	}
	return nil
}

type pageHandler struct {
	pageService *service.PageService
	viewService *service.ViewService
}

type getPagesResponse struct {
	Pages      []model.Page                     `json:"pages"`
	PagesLinks []paginationutils.PaginationLink `json:"pages_links"`
}

func (hand *pageHandler) GetPages(w http.ResponseWriter, r *http.Request) {
	status, err := getStatusQuery(r)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	pages, err := hand.pageService.GetPages(r.Context(), service.GetPagesParams{
		Status:   status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	pagesCount, err := hand.pageService.GetPagesCount(r.Context(), status)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       pageSize,
		ItemsCount:         pagesCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(page)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	httputils.WriteJSON(w, http.StatusOK, &getPagesResponse{
		Pages:      pages,
		PagesLinks: pagesLinks,
	})
}

func (hand *pageHandler) GetPageByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	page, err := hand.pageService.GetPageByID(r.Context(), id)
	if err != nil {
		pageErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &page)
}

func (hand *pageHandler) GetPageByPath(w http.ResponseWriter, r *http.Request) {
	page, err := hand.pageService.GetPageByPath(r.Context(), chi.URLParam(r, "path"))
	if err != nil {
		pageErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &page)
}

func (hand *pageHandler) NewPage(w http.ResponseWriter, r *http.Request) {
	payload := &PagePayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := hand.pageService.NewPage(r.Context(), service.NewPageParams{
		Name:        payload.Name,
		Path:        payload.Path,
		Cover:       payload.Cover,
		Content:     payload.Content,
		Status:      payload.Status,
		Order:       payload.Order,
		PublishedAt: payload.publishedAt,
	})
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	page, err := hand.pageService.GetPageByID(r.Context(), id)
	if err != nil {
		pageErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusCreated, &page)
}

func (hand *pageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	payload := &PagePayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := hand.pageService.UpdatePage(r.Context(), service.UpdatePageParams{
		ID:          id,
		Name:        payload.Name,
		Path:        payload.Path,
		Cover:       payload.Cover,
		Content:     payload.Content,
		Status:      payload.Status,
		Order:       payload.Order,
		PublishedAt: payload.publishedAt,
	}); err != nil {
		pageErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *pageHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	if err := hand.pageService.DeletePage(r.Context(), id); err != nil {
		pageErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegisterPageView publishes a view event for the page's public path. The
// counter on the page row moves when the consumer processes the event.
func (hand *pageHandler) RegisterPageView(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	page, err := hand.pageService.GetPageByID(r.Context(), id)
	if err != nil {
		pageErrHandler(w, err)
		return
	}

	if err := hand.viewService.RegisterView(r.Context(), service.RegisterViewParams{
		URL:       "/" + page.Path,
		IP:        remoteIP(r),
		UserAgent: r.UserAgent(),
	}); err != nil {
		pageErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (hand *pageHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/pages", hand.GetPages)
		r.Post(baseURL+"/pages", hand.NewPage)
		r.Get(baseURL+"/pages/path/{path}", hand.GetPageByPath)
		r.Get(baseURL+"/pages/{id}", hand.GetPageByID)
		r.Patch(baseURL+"/pages/{id}", hand.UpdatePage)
		r.Delete(baseURL+"/pages/{id}", hand.DeletePage)
		r.Post(baseURL+"/pages/{id}/views", hand.RegisterPageView)
	}
}

var _ httputils.Handler = (*pageHandler)(nil)

func pageErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPageNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPagePathExists):
		httputils.WriteErrorResponse(w, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewPageHandlerParams struct {
	fx.In

	PageService *service.PageService
	ViewService *service.ViewService
}

func NewPageHandler(params NewPageHandlerParams) *pageHandler {
	return &pageHandler{
		pageService: params.PageService,
		viewService: params.ViewService,
	}
}
