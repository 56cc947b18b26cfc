package storage

import (
	"context"
	"time"
)

// Settings live in a single row with a fixed primary key.
const settingRowID = 1

type SettingRow struct {
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
	UpdatedAt         time.Time
}

const getSetting = `
SELECT system_url, system_title, system_logo, system_favicon,
       COALESCE(system_footer, ''), seo_keyword, seo_desc, google_analytics_id,
       smtp_host, smtp_port, smtp_user, smtp_pass, smtp_from, updated_at
  FROM settings
 WHERE id = ?
`

func (q *Queries) GetSetting(ctx context.Context) (SettingRow, error) {
	var row SettingRow
	err := q.db.QueryRowContext(ctx, getSetting, settingRowID).Scan(
		&row.SystemURL, &row.SystemTitle, &row.SystemLogo, &row.SystemFavicon,
		&row.SystemFooter, &row.SeoKeyword, &row.SeoDesc, &row.GoogleAnalyticsID,
		&row.SMTPHost, &row.SMTPPort, &row.SMTPUser, &row.SMTPPass, &row.SMTPFrom,
		&row.UpdatedAt,
	)
	return row, err
}

const upsertSetting = `
INSERT INTO settings (id, system_url, system_title, system_logo, system_favicon,
                      system_footer, seo_keyword, seo_desc, google_analytics_id,
                      smtp_host, smtp_port, smtp_user, smtp_pass, smtp_from)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
    system_url = VALUES(system_url),
    system_title = VALUES(system_title),
    system_logo = VALUES(system_logo),
    system_favicon = VALUES(system_favicon),
    system_footer = VALUES(system_footer),
    seo_keyword = VALUES(seo_keyword),
    seo_desc = VALUES(seo_desc),
    google_analytics_id = VALUES(google_analytics_id),
    smtp_host = VALUES(smtp_host),
    smtp_port = VALUES(smtp_port),
    smtp_user = VALUES(smtp_user),
    smtp_pass = VALUES(smtp_pass),
    smtp_from = VALUES(smtp_from)
`

type UpsertSettingParams struct {
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

func (q *Queries) UpsertSetting(ctx context.Context, params UpsertSettingParams) error {
	_, err := q.db.ExecContext(ctx, upsertSetting, settingRowID,
		params.SystemURL, params.SystemTitle, params.SystemLogo, params.SystemFavicon,
		params.SystemFooter, params.SeoKeyword, params.SeoDesc, params.GoogleAnalyticsID,
		params.SMTPHost, params.SMTPPort, params.SMTPUser, params.SMTPPass, params.SMTPFrom,
	)
	return err
}
