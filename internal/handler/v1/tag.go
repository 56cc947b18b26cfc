package handler

import (
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/pkg/httputils"
	"go.uber.org/fx"
)

type TagPayload struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (p *TagPayload) Bind(r *http.Request) error {
	if p.Label == "" || p.Value == "" {
		return errors.New("missing required tag label or value")
	}
	return nil
}

type tagHandler struct {
	tagService *service.TagService
}

func (hand *tagHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := hand.tagService.GetTags(r.Context())
	if err != nil {
		tagErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, tags)
}

func (hand *tagHandler) NewTag(w http.ResponseWriter, r *http.Request) {
	payload := &TagPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := hand.tagService.NewTag(r.Context(), service.NewTagParams{
		Label: payload.Label,
		Value: payload.Value,
	})
	if err != nil {
		tagErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (hand *tagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		tagErrHandler(w, err)
		return
	}

	payload := &TagPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := hand.tagService.UpdateTag(r.Context(), service.UpdateTagParams{
		ID:    id,
		Label: payload.Label,
		Value: payload.Value,
	}); err != nil {
		tagErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *tagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		tagErrHandler(w, err)
		return
	}

	if err := hand.tagService.DeleteTag(r.Context(), id); err != nil {
		tagErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *tagHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/tags", hand.GetTags)
		r.Post(baseURL+"/tags", hand.NewTag)
		r.Patch(baseURL+"/tags/{id}", hand.UpdateTag)
		r.Delete(baseURL+"/tags/{id}", hand.DeleteTag)
	}
}

var _ httputils.Handler = (*tagHandler)(nil)

func tagErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTagNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTagValueExists):
		httputils.WriteErrorResponse(w, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewTagHandlerParams struct {
	fx.In

	TagService *service.TagService
}

func NewTagHandler(params NewTagHandlerParams) *tagHandler {
	return &tagHandler{
		tagService: params.TagService,
	}
}
