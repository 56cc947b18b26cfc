package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/reactpress/reactpress/internal/accessor"
	"github.com/reactpress/reactpress/internal/config"
	"github.com/reactpress/reactpress/internal/mail"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"go.uber.org/fx"
)

type SettingService struct {
	queries *storage.Queries
	seed    *config.SeedConfig
}

// GetSetting returns the site settings. A missing row yields defaults
// seeded from the environment instead of an error.
func (s *SettingService) GetSetting(ctx context.Context) (model.Setting, error) {
	row, err := s.queries.GetSetting(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Setting{GoogleAnalyticsID: s.seed.GoogleAnalyticsID}, nil
	}
	if err != nil {
		return model.NilSetting, err
	}
	return accessor.SettingFromSettingRow(row), nil
}

type UpdateSettingParams struct {
	SystemURL         string
	SystemTitle       string
	SystemLogo        string
	SystemFavicon     string
	SystemFooter      string
	SeoKeyword        string
	SeoDesc           string
	GoogleAnalyticsID string
	SMTPHost          string
	SMTPPort          string
	SMTPUser          string
	SMTPPass          string
	SMTPFrom          string
}

func (s *SettingService) UpdateSetting(ctx context.Context, params UpdateSettingParams) error {
	smtpPass := params.SMTPPass
	// The masked placeholder coming back from a client keeps the stored value.
	if smtpPass == model.SMTP_PASS_MASK {
		row, lookupErr := s.queries.GetSetting(ctx)
		pass, err := storedSMTPPass(row.SMTPPass, lookupErr)
		if err != nil {
			return err
		}
		smtpPass = pass
	}

	return s.queries.UpsertSetting(ctx, storage.UpsertSettingParams{
		SystemURL:         params.SystemURL,
		SystemTitle:       params.SystemTitle,
		SystemLogo:        params.SystemLogo,
		SystemFavicon:     params.SystemFavicon,
		SystemFooter:      params.SystemFooter,
		SeoKeyword:        params.SeoKeyword,
		SeoDesc:           params.SeoDesc,
		GoogleAnalyticsID: params.GoogleAnalyticsID,
		SMTPHost:          params.SMTPHost,
		SMTPPort:          params.SMTPPort,
		SMTPUser:          params.SMTPUser,
		SMTPPass:          smtpPass,
		SMTPFrom:          params.SMTPFrom,
	})
}

// storedSMTPPass resolves the masked placeholder against the stored row.
// Without a stored row there is nothing to keep, so the mask stores empty.
func storedSMTPPass(stored string, lookupErr error) (string, error) {
	if errors.Is(lookupErr, sql.ErrNoRows) {
		return "", nil
	}
	if lookupErr != nil {
		return "", lookupErr
	}
	return stored, nil
}

// GetSMTPConfig hands the mailer the raw SMTP settings.
func (s *SettingService) GetSMTPConfig(ctx context.Context) (mail.SMTPConfig, error) {
	row, err := s.queries.GetSetting(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return mail.SMTPConfig{}, nil
	}
	if err != nil {
		return mail.SMTPConfig{}, err
	}

	return mail.SMTPConfig{
		Host: row.SMTPHost,
		Port: row.SMTPPort,
		User: row.SMTPUser,
		Pass: row.SMTPPass,
		From: row.SMTPFrom,
	}, nil
}

type NewSettingServiceParams struct {
	fx.In

	DB   *sql.DB
	Seed *config.SeedConfig
}

func NewSettingService(params NewSettingServiceParams) *SettingService {
	return &SettingService{
		queries: storage.New(params.DB),
		seed:    params.Seed,
	}
}
