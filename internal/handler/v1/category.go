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

type CategoryPayload struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (p *CategoryPayload) Bind(r *http.Request) error {
	if p.Label == "" || p.Value == "" {
		return errors.New("missing required category label or value")
	}
	return nil
}

type categoryHandler struct {
	categoryService *service.CategoryService
}

func (hand *categoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := hand.categoryService.GetCategories(r.Context())
	if err != nil {
		categoryErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, categories)
}

func (hand *categoryHandler) NewCategory(w http.ResponseWriter, r *http.Request) {
	payload := &CategoryPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := hand.categoryService.NewCategory(r.Context(), service.NewCategoryParams{
		Label: payload.Label,
		Value: payload.Value,
	})
	if err != nil {
		categoryErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (hand *categoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		categoryErrHandler(w, err)
		return
	}

	payload := &CategoryPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := hand.categoryService.UpdateCategory(r.Context(), service.UpdateCategoryParams{
		ID:    id,
		Label: payload.Label,
		Value: payload.Value,
	}); err != nil {
		categoryErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *categoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		categoryErrHandler(w, err)
		return
	}

	if err := hand.categoryService.DeleteCategory(r.Context(), id); err != nil {
		categoryErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *categoryHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/categories", hand.GetCategories)
		r.Post(baseURL+"/categories", hand.NewCategory)
		r.Patch(baseURL+"/categories/{id}", hand.UpdateCategory)
		r.Delete(baseURL+"/categories/{id}", hand.DeleteCategory)
	}
}

var _ httputils.Handler = (*categoryHandler)(nil)

func categoryErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCategoryValueExists):
		httputils.WriteErrorResponse(w, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewCategoryHandlerParams struct {
	fx.In

	CategoryService *service.CategoryService
}

func NewCategoryHandler(params NewCategoryHandlerParams) *categoryHandler {
	return &categoryHandler{
		categoryService: params.CategoryService,
	}
}
