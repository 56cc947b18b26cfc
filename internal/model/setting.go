package model

// Setting is the single-row site configuration. SMTP fields feed the
// comment notification mailer; the password is masked on read.
type Setting struct {
	SystemURL         string `json:"system_url"`
	SystemTitle       string `json:"system_title"`
	SystemLogo        string `json:"system_logo,omitempty"`
	SystemFavicon     string `json:"system_favicon,omitempty"`
	SystemFooter      string `json:"system_footer,omitempty"`
	SeoKeyword        string `json:"seo_keyword,omitempty"`
	SeoDesc           string `json:"seo_desc,omitempty"`
	GoogleAnalyticsID string `json:"google_analytics_id,omitempty"`
	SMTPHost          string `json:"smtp_host,omitempty"`
	SMTPPort          string `json:"smtp_port,omitempty"`
	SMTPUser          string `json:"smtp_user,omitempty"`
	SMTPPass          string `json:"smtp_pass,omitempty"`
	SMTPFrom          string `json:"smtp_from,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

// SMTP_PASS_MASK replaces the stored SMTP password in responses.
// Submitting it back keeps the stored value unchanged.
const SMTP_PASS_MASK = "********"

var NilSetting = Setting{}
