package natsinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewEventRoundTrip(t *testing.T) {
	event := ViewEvent{
		URL:       "/article/42",
		IP:        "203.0.113.7",
		UserAgent: "Mozilla/5.0",
		VisitedAt: time.Date(2024, 10, 12, 10, 1, 30, 0, time.UTC),
	}

	data, err := event.Marshal()
	require.NoError(t, err)

	var decoded ViewEvent
	require.NoError(t, decoded.Unmarshal(data))

	assert.Equal(t, event.URL, decoded.URL)
	assert.Equal(t, event.IP, decoded.IP)
	assert.Equal(t, event.UserAgent, decoded.UserAgent)
	assert.True(t, event.VisitedAt.Equal(decoded.VisitedAt))
}

func TestViewEventUnmarshalErrors(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		var event ViewEvent
		assert.Error(t, event.Unmarshal([]byte("not-json")))
	})

	t.Run("bad timestamp", func(t *testing.T) {
		var event ViewEvent
		assert.Error(t, event.Unmarshal([]byte(`{"url":"/","visited_at":"yesterday"}`)))
	})
}

func TestViewsStreamNewViewSubject(t *testing.T) {
	assert.Equal(t, "views.article", ViewsStream_NewViewSubject("article"))
	assert.Equal(t, "views.page", ViewsStream_NewViewSubject("page"))

	t.Run("spaces never split the subject", func(t *testing.T) {
		assert.Equal(t, "views.some_kind", ViewsStream_NewViewSubject("some kind"))
	})
}

func TestViewsStreamConsumerConfig(t *testing.T) {
	stream, subject, _, config := ViewsStream_NewViewConsumerConfig("view-consumer")

	assert.Equal(t, VIEWS_STREAM_CONFIG.Name, stream)
	assert.Equal(t, VIEWS_STREAM_ANY_VIEW_SUBJECT, subject)
	assert.Equal(t, "view-consumer", config.Durable)
	assert.Equal(t, "view-consumer", config.DeliverGroup)
}
