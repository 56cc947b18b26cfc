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

type SettingPayload struct {
	SystemURL         string `json:"system_url"`
	SystemTitle       string `json:"system_title"`
	SystemLogo        string `json:"system_logo"`
	SystemFavicon     string `json:"system_favicon"`
	SystemFooter      string `json:"system_footer"`
	SeoKeyword        string `json:"seo_keyword"`
	SeoDesc           string `json:"seo_desc"`
	GoogleAnalyticsID string `json:"google_analytics_id"`
	SMTPHost          string `json:"smtp_host"`
	SMTPPort          string `json:"smtp_port"`
	SMTPUser          string `json:"smtp_user"`
	SMTPPass          string `json:"smtp_pass"`
	SMTPFrom          string `json:"smtp_from"`
}

func (p *SettingPayload) Bind(r *http.Request) error {
	if p.SystemTitle == "" {
		return errors.New("missing required setting system_title")
	}
	return nil
}

type settingHandler struct {
	settingService *service.SettingService
}

func (hand *settingHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := hand.settingService.GetSetting(r.Context())
	if err != nil {
		settingErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &setting)
}

func (hand *settingHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	payload := &SettingPayload{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := hand.settingService.UpdateSetting(r.Context(), service.UpdateSettingParams{
		SystemURL:         payload.SystemURL,
		SystemTitle:       payload.SystemTitle,
		SystemLogo:        payload.SystemLogo,
		SystemFavicon:     payload.SystemFavicon,
		SystemFooter:      payload.SystemFooter,
		SeoKeyword:        payload.SeoKeyword,
		SeoDesc:           payload.SeoDesc,
		GoogleAnalyticsID: payload.GoogleAnalyticsID,
		SMTPHost:          payload.SMTPHost,
		SMTPPort:          payload.SMTPPort,
		SMTPUser:          payload.SMTPUser,
		SMTPPass:          payload.SMTPPass,
		SMTPFrom:          payload.SMTPFrom,
	}); err != nil {
		settingErrHandler(w, err)
		return
	}

	setting, err := hand.settingService.GetSetting(r.Context())
	if err != nil {
		settingErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &setting)
}

func (hand *settingHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/settings", hand.GetSetting)
		r.Put(baseURL+"/settings", hand.UpdateSetting)
	}
}

var _ httputils.Handler = (*settingHandler)(nil)

func settingErrHandler(w http.ResponseWriter, err error) {
	httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
}

type NewSettingHandlerParams struct {
	fx.In

	SettingService *service.SettingService
}

func NewSettingHandler(params NewSettingHandlerParams) *settingHandler {
	return &settingHandler{
		settingService: params.SettingService,
	}
}
