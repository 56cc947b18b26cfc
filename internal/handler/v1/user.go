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

type NewUserPayload struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func (p *NewUserPayload) Bind(r *http.Request) error {
	if p.Name == "" || p.Password == "" {
		return errors.New("missing required user name or password")
	}
	return validateUserRoleStatus(p.Role, p.Status)
}

type UpdateUserPayload struct {
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func (p *UpdateUserPayload) Bind(r *http.Request) error {
	return validateUserRoleStatus(p.Role, p.Status)
}

type UserPasswordPayload struct {
	Password string `json:"password"`
}

func (p *UserPasswordPayload) Bind(r *http.Request) error {
	if p.Password == "" {
		return errors.New("missing required user password")
	}
	return nil
}

func validateUserRoleStatus(role, status string) error {
	switch role {
	case "", model.USER_ROLE_ADMIN, model.USER_ROLE_VISITOR:
	default:
		return errors.New("unsupported user role: " + role)
	}
	switch status {
	case "", model.USER_STATUS_ACTIVE, model.USER_STATUS_LOCKED:
	default:
		return errors.New("unsupported user status: " + status)
	}
	return nil
}

type userHandler struct {
	userService *service.UserService
}

type getUsersResponse struct {
	Users []model.User                     `json:"users"`
	Pages []paginationutils.PaginationLink `json:"pages"`
}

func (hand *userHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		userErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		userErrHandler(w, err)
		return
	}

	users, err := hand.userService.GetUsers(r.Context(), service.GetUsersParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		userErrHandler(w, err)
		return
	}

	usersCount, err := hand.userService.GetUsersCount(r.Context())
	if err != nil {
		userErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       pageSize,
		ItemsCount:         usersCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(page)
	if err != nil {
		userErrHandler(w, err)
		return
	}

	httputils.WriteJSON(w, http.StatusOK, &getUsersResponse{
		Users: users,
		Pages: pagesLinks,
	})
}

func (hand *userHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		userErrHandler(w, err)
		return
	}

	user, err := hand.userService.GetUserByID(r.Context(), id)
	if err != nil {
		userErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &user)
}

func (hand *userHandler) NewUser(w http.ResponseWriter, r *http.Request) {
	payload := &NewUserPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := hand.userService.NewUser(r.Context(), service.NewUserParams{
		Name:     payload.Name,
		Password: payload.Password,
		Email:    payload.Email,
		Avatar:   payload.Avatar,
		Role:     payload.Role,
		Status:   payload.Status,
	})
	if err != nil {
		userErrHandler(w, err)
		return
	}

	user, err := hand.userService.GetUserByID(r.Context(), id)
	if err != nil {
		userErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusCreated, &user)
}

func (hand *userHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		userErrHandler(w, err)
		return
	}

	payload := &UpdateUserPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := hand.userService.UpdateUser(r.Context(), service.UpdateUserParams{
		ID:     id,
		Email:  payload.Email,
		Avatar: payload.Avatar,
		Role:   payload.Role,
		Status: payload.Status,
	}); err != nil {
		userErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *userHandler) UpdateUserPassword(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		userErrHandler(w, err)
		return
	}

	payload := &UserPasswordPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := hand.userService.UpdateUserPassword(r.Context(), id, payload.Password); err != nil {
		userErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *userHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		userErrHandler(w, err)
		return
	}

	if err := hand.userService.DeleteUser(r.Context(), id); err != nil {
		userErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *userHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/users", hand.GetUsers)
		r.Post(baseURL+"/users", hand.NewUser)
		r.Get(baseURL+"/users/{id}", hand.GetUserByID)
		r.Patch(baseURL+"/users/{id}", hand.UpdateUser)
		r.Patch(baseURL+"/users/{id}/password", hand.UpdateUserPassword)
		r.Delete(baseURL+"/users/{id}", hand.DeleteUser)
	}
}

var _ httputils.Handler = (*userHandler)(nil)

func userErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserNameExists):
		httputils.WriteErrorResponse(w, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewUserHandlerParams struct {
	fx.In

	UserService *service.UserService
}

func NewUserHandler(params NewUserHandlerParams) *userHandler {
	return &userHandler{
		userService: params.UserService,
	}
}
