package dateutils

import (
	"errors"
	"time"
)

var ErrUnsupportedDateFormat = errors.New("unsupported date format")

// Layouts accepted for date query params, most specific first.
var queryLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseQueryString parses a date query param like `2024-10-12T10:01`
// or `2024-10-12`.
func ParseQueryString(str string) (time.Time, error) {
	for _, layout := range queryLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnsupportedDateFormat
}

func ToString(t time.Time) string {
	return t.Format(time.RFC3339)
}

func ParseString(str string) (time.Time, error) {
	return time.Parse(time.RFC3339, str)
}

// Pretify renders a timestamp the way article cards display it.
func Pretify(t time.Time) string {
	return t.Format("15:04 2006-01-02")
}
