package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"

	"github.com/modelforge/modelforge/config"
)

const sendTimeout = 10 * time.Second

// Mailgun sends transactional mail for the service. Every message is
// tagged with the app name so deliveries can be filtered in the Mailgun
// dashboard.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
	Tag    string
}

func NewMailgun(cfg *config.Config) *Mailgun {
	return &Mailgun{
		Domain: cfg.MailgunDomain,
		APIKey: cfg.MailgunAPIKey,
		Sender: cfg.MailgunSender,
		Tag:    cfg.AppName,
	}
}

// Send delivers a message. html is optional; when present it becomes the
// HTML body alongside the text part.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	if m.Tag != "" {
		_ = msg.AddTag(m.Tag)
	}
	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}
