package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/pkg/dateutils"
	"github.com/reactpress/reactpress/pkg/httputils"
	"github.com/reactpress/reactpress/pkg/sqlutils"
)

type GetArticlesQueryParams struct {
	Status        string
	CategoryValue string
	TagValue      string
	Sorting       service.ArticleSorting
	Page          int
	PageSize      int
}

type GetArticleByIDUrlParams struct {
	ID int64
}

type RecommendedArticlesQueryParams struct {
	ArticleID int64
	Limit     int64
}

// ArticlePayload is the create/update request body.
type ArticlePayload struct {
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Content       string   `json:"content"`
	Cover         string   `json:"cover"`
	Status        string   `json:"status"`
	Password      string   `json:"password"`
	KeepPassword  bool     `json:"keep_password"`
	IsRecommended bool     `json:"is_recommended"`
	IsCommentable bool     `json:"is_commentable"`
	CategoryID    int64    `json:"category_id"`
	PublishedAt   string   `json:"published_at"`
	Tags          []string `json:"tags"`

	publishedAt sql.NullTime
}

func (p *ArticlePayload) Bind(r *http.Request) error {
	if p.Title == "" {
		return errors.New("missing required article title")
	}

	switch p.Status {
	case "":
		p.Status = model.ARTICLE_STATUS_DRAFT
	case model.ARTICLE_STATUS_DRAFT, model.ARTICLE_STATUS_PUBLISH:
	default:
		return errors.New("unsupported article status: " + p.Status)
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

type ArticlePasswordPayload struct {
	Password string `json:"password"`
}

func (p *ArticlePasswordPayload) Bind(r *http.Request) error {
	return nil
}

type ArticleLikePayload struct {
	Delta int64 `json:"delta"`
}

func (p *ArticleLikePayload) Bind(r *http.Request) error {
	if p.Delta == 0 {
		p.Delta = 1
	}
	if p.Delta > 1 {
		p.Delta = 1
	}
	if p.Delta < -1 {
		p.Delta = -1
	}
	return nil
}

type ArticleHandler interface {
	GetArticles(w http.ResponseWriter, r *http.Request, queryParams *GetArticlesQueryParams)
	GetArticleByID(w http.ResponseWriter, r *http.Request, params *GetArticleByIDUrlParams)
	NewArticle(w http.ResponseWriter, r *http.Request, payload *ArticlePayload)
	UpdateArticle(w http.ResponseWriter, r *http.Request, id int64, payload *ArticlePayload)
	DeleteArticle(w http.ResponseWriter, r *http.Request, params *GetArticleByIDUrlParams)
	CheckArticlePassword(w http.ResponseWriter, r *http.Request, id int64, payload *ArticlePasswordPayload)
	RecommendedArticles(w http.ResponseWriter, r *http.Request, queryParams *RecommendedArticlesQueryParams)
	Archives(w http.ResponseWriter, r *http.Request)
	LikeArticle(w http.ResponseWriter, r *http.Request, id int64, payload *ArticleLikePayload)
	RegisterArticleView(w http.ResponseWriter, r *http.Request, params *GetArticleByIDUrlParams)
}

type articleParamsWrapperHandler struct {
	handler ArticleHandler
}

func (h *articleParamsWrapperHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	status, err := getStatusQuery(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	sorting, err := getArticleSortingQuery(r, service.ARTICLE_SORTING_NEWEST)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	h.handler.GetArticles(w, r, &GetArticlesQueryParams{
		Status:        status,
		CategoryValue: r.URL.Query().Get(CATEGORY_QUERY_PARAM_NAME),
		TagValue:      r.URL.Query().Get(TAG_QUERY_PARAM_NAME),
		Sorting:       sorting,
		Page:          page,
		PageSize:      pageSize,
	})
}

func (h *articleParamsWrapperHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	h.handler.GetArticleByID(w, r, &GetArticleByIDUrlParams{ID: id})
}

func (h *articleParamsWrapperHandler) NewArticle(w http.ResponseWriter, r *http.Request) {
	payload := &ArticlePayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handler.NewArticle(w, r, payload)
}

func (h *articleParamsWrapperHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	payload := &ArticlePayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handler.UpdateArticle(w, r, id, payload)
}

func (h *articleParamsWrapperHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	h.handler.DeleteArticle(w, r, &GetArticleByIDUrlParams{ID: id})
}

func (h *articleParamsWrapperHandler) CheckArticlePassword(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	payload := &ArticlePasswordPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handler.CheckArticlePassword(w, r, id, payload)
}

func (h *articleParamsWrapperHandler) RecommendedArticles(w http.ResponseWriter, r *http.Request) {
	queryParams := &RecommendedArticlesQueryParams{Limit: 6}

	if articleIDStr := r.URL.Query().Get("article_id"); articleIDStr != "" {
		articleID, err := strconv.ParseInt(articleIDStr, 10, 64)
		if err != nil {
			articleErrHandler(w, errors.Join(errors.New("unsupported `article_id` query value "+articleIDStr), ErrUnsupportedQueryParam))
			return
		}
		queryParams.ArticleID = articleID
	}

	h.handler.RecommendedArticles(w, r, queryParams)
}

func (h *articleParamsWrapperHandler) Archives(w http.ResponseWriter, r *http.Request) {
	h.handler.Archives(w, r)
}

func (h *articleParamsWrapperHandler) LikeArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	payload := &ArticleLikePayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handler.LikeArticle(w, r, id, payload)
}

func (h *articleParamsWrapperHandler) RegisterArticleView(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	h.handler.RegisterArticleView(w, r, &GetArticleByIDUrlParams{ID: id})
}

func (h *articleParamsWrapperHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/articles", h.GetArticles)
		r.Post(baseURL+"/articles", h.NewArticle)
		r.Get(baseURL+"/articles/recommend", h.RecommendedArticles)
		r.Get(baseURL+"/articles/archives", h.Archives)
		r.Get(baseURL+"/articles/{id}", h.GetArticleByID)
		r.Patch(baseURL+"/articles/{id}", h.UpdateArticle)
		r.Delete(baseURL+"/articles/{id}", h.DeleteArticle)
		r.Post(baseURL+"/articles/{id}/check-password", h.CheckArticlePassword)
		r.Post(baseURL+"/articles/{id}/likes", h.LikeArticle)
		r.Post(baseURL+"/articles/{id}/views", h.RegisterArticleView)
	}
}

var _ httputils.Handler = (*articleParamsWrapperHandler)(nil)

func newArticleParamsWrapper(handler ArticleHandler) *articleParamsWrapperHandler {
	return &articleParamsWrapperHandler{
		handler: handler,
	}
}

func articleErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound), errors.Is(err, service.ErrArticlesNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTagNotFound):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWrongPassword):
		httputils.WriteErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
