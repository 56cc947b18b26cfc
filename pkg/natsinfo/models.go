package natsinfo

import (
	"encoding/json"
	"time"

	"github.com/reactpress/reactpress/pkg/dateutils"
)

// ViewEvent is a single page view waiting to be aggregated into storage.
type ViewEvent struct {
	URL       string
	IP        string
	UserAgent string
	VisitedAt time.Time
}

type viewEventDTO struct {
	URL       string `json:"url"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	VisitedAt string `json:"visited_at"`
}

func (v *ViewEvent) Marshal() ([]byte, error) {
	return json.Marshal(&viewEventDTO{
		URL:       v.URL,
		IP:        v.IP,
		UserAgent: v.UserAgent,
		VisitedAt: dateutils.ToString(v.VisitedAt),
	})
}

func (v *ViewEvent) Unmarshal(data []byte) error {
	var dto viewEventDTO

	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	v.URL = dto.URL
	v.IP = dto.IP
	v.UserAgent = dto.UserAgent

	visitedAt, err := dateutils.ParseString(dto.VisitedAt)
	if err != nil {
		return err
	}
	v.VisitedAt = visitedAt

	return nil
}
