package mailer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/modelforge/modelforge/config"
	"github.com/modelforge/modelforge/pkg/mailer/templates"
)

// AuthMailer sends account emails synchronously so delivery failures
// surface to the caller. Notification mail goes through the queue instead.
type AuthMailer struct {
	cfg *config.Config
	mg  *Mailgun
	log *logrus.Logger
}

func NewAuthMailer(cfg *config.Config, mg *Mailgun, log *logrus.Logger) *AuthMailer {
	return &AuthMailer{cfg: cfg, mg: mg, log: log}
}

func (m *AuthMailer) SendVerification(ctx context.Context, name, email, link string) error {
	data := templates.NewVerifyEmailData(m.cfg, name, email, link,
		templates.WithExpiresIn(24*time.Hour))
	return m.send(ctx, email, templates.VerifyEmail, data)
}

func (m *AuthMailer) SendPasswordReset(ctx context.Context, name, email, link string) error {
	data := templates.NewForgotPasswordData(m.cfg, name, email, link,
		templates.WithExpiresIn(24*time.Hour))
	return m.send(ctx, email, templates.ForgotPassword, data)
}

func (m *AuthMailer) send(ctx context.Context, to, tpl string, data map[string]any) error {
	subject, text, html, err := templates.Render(tpl, data)
	if err != nil {
		return err
	}
	if !m.cfg.MailSendEnabled {
		m.log.WithFields(logrus.Fields{"to": to, "template": tpl}).
			Info("mail sending disabled, skipping")
		return nil
	}
	return m.mg.Send(ctx, to, subject, text, html)
}
