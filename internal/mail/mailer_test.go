package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMTPConfigReady(t *testing.T) {
	assert.False(t, SMTPConfig{}.Ready())
	assert.False(t, SMTPConfig{Host: "smtp.example.com"}.Ready())
	assert.True(t, SMTPConfig{
		Host: "smtp.example.com",
		Port: "587",
		User: "blog",
		Pass: "secret",
		From: "blog@example.com",
	}.Ready())
}

func TestMessageBytes(t *testing.T) {
	msg := Message{
		To:      "reader@example.com",
		Subject: "alice replied to your comment",
		Body:    "Your comment received a reply.",
	}

	raw := string(msg.Bytes("blog@example.com"))

	assert.Contains(t, raw, "From: blog@example.com\r\n")
	assert.Contains(t, raw, "To: reader@example.com\r\n")
	assert.Contains(t, raw, "Subject: alice replied to your comment\r\n")
	assert.Contains(t, raw, "\r\n\r\nYour comment received a reply.")
}

func TestSendUnconfigured(t *testing.T) {
	mailer := NewMailer()
	err := mailer.Send(SMTPConfig{}, Message{To: "reader@example.com"})
	assert.ErrorIs(t, err, ErrSMTPNotConfigured)
}
