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

type CommentPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Content  string `json:"content"`
	HostID   string `json:"host_id"`
	URL      string `json:"url"`
	ParentID int64  `json:"parent_id"`
}

func (p *CommentPayload) Bind(r *http.Request) error {
	if p.Name == "" || p.Content == "" || p.HostID == "" {
		return errors.New("missing required comment name, content or host_id")
	}
	return nil
}

type CommentPassPayload struct {
	Pass bool `json:"pass"`
}

func (p *CommentPassPayload) Bind(r *http.Request) error {
	return nil
}

type commentHandler struct {
	commentService *service.CommentService
}

type getCommentsResponse struct {
	Comments []model.Comment                  `json:"comments"`
	Pages    []paginationutils.PaginationLink `json:"pages"`
}

func (hand *commentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	pass, err := getPassQuery(r)
	if err != nil {
		commentErrHandler(w, err)
		return
	}

	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		commentErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		commentErrHandler(w, err)
		return
	}

	comments, err := hand.commentService.GetComments(r.Context(), service.GetCommentsParams{
		Pass:     pass,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		commentErrHandler(w, err)
		return
	}

	commentsCount, err := hand.commentService.GetCommentsCount(r.Context(), pass)
	if err != nil {
		commentErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       pageSize,
		ItemsCount:         commentsCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(page)
	if err != nil {
		commentErrHandler(w, err)
		return
	}

	httputils.WriteJSON(w, http.StatusOK, &getCommentsResponse{
		Comments: comments,
		Pages:    pagesLinks,
	})
}

func (hand *commentHandler) GetCommentsByHost(w http.ResponseWriter, r *http.Request) {
	hostID := chi.URLParam(r, "hostID")
	comments, err := hand.commentService.GetCommentsByHost(r.Context(), hostID)
	if err != nil {
		commentErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, comments)
}

func (hand *commentHandler) NewComment(w http.ResponseWriter, r *http.Request) {
	payload := &CommentPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := hand.commentService.NewComment(r.Context(), service.NewCommentParams{
		Name:      payload.Name,
		Email:     payload.Email,
		Content:   payload.Content,
		UserAgent: r.UserAgent(),
		HostID:    payload.HostID,
		URL:       payload.URL,
		ParentID:  payload.ParentID,
	})
	if err != nil {
		commentErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (hand *commentHandler) UpdateCommentPass(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		commentErrHandler(w, err)
		return
	}

	payload := &CommentPassPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := hand.commentService.UpdateCommentPass(r.Context(), id, payload.Pass); err != nil {
		commentErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *commentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		commentErrHandler(w, err)
		return
	}

	if err := hand.commentService.DeleteComment(r.Context(), id); err != nil {
		commentErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *commentHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/comments", hand.GetComments)
		r.Post(baseURL+"/comments", hand.NewComment)
		r.Get(baseURL+"/comments/host/{hostID}", hand.GetCommentsByHost)
		r.Patch(baseURL+"/comments/{id}/pass", hand.UpdateCommentPass)
		r.Delete(baseURL+"/comments/{id}", hand.DeleteComment)
	}
}

var _ httputils.Handler = (*commentHandler)(nil)

func commentErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCommentParentNotFound), errors.Is(err, service.ErrCommentsDisabled):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewCommentHandlerParams struct {
	fx.In

	CommentService *service.CommentService
}

func NewCommentHandler(params NewCommentHandlerParams) *commentHandler {
	return &commentHandler{
		commentService: params.CommentService,
	}
}
