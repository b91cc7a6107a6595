// Package mail delivers the portal's outbound notifications over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/mananuf/voba-portal/internal/config"
	"github.com/mananuf/voba-portal/internal/shared/ratelimiter"
)

// Message is a rendered email: subject plus HTML body, with an optional
// plain-text alternative.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Mailer sends rendered messages to a single recipient via SMTP with
// STARTTLS. Sends pass through a rate limiter so bursts of registrations do
// not trip the provider's throttling.
type Mailer struct {
	client   *gomail.Client
	fromName string
	fromAddr string
	baseURL  string
	limiter  ratelimiter.RateLimiterInterface
}

// NewMailer builds a Mailer from the SMTP section of the configuration.
func NewMailer(cfg *config.Config, limiter ratelimiter.RateLimiterInterface) (*Mailer, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_SERVER is not configured")
	}

	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTPUsername),
		gomail.WithPassword(cfg.SMTPPassword),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &Mailer{
		client:   client,
		fromName: cfg.FromName,
		fromAddr: cfg.FromEmail,
		baseURL:  cfg.BaseURL,
		limiter:  limiter,
	}, nil
}

// Send delivers a rendered message. When Text is set the message goes out as
// multipart/alternative, otherwise HTML only.
func (m *Mailer) Send(ctx context.Context, toEmail, toName string, msg Message) error {
	if m.limiter != nil {
		m.limiter.WaitIfNeeded()
	}

	out := gomail.NewMsg()
	if err := out.FromFormat(m.fromName, m.fromAddr); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := out.AddToFormat(toName, toEmail); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	out.Subject(msg.Subject)

	if msg.Text != "" {
		out.SetBodyString(gomail.TypeTextPlain, msg.Text)
		out.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	} else {
		out.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	return nil
}

// SendVerification delivers the email-verification message for the given code.
func (m *Mailer) SendVerification(ctx context.Context, toEmail, toName, code string) error {
	return m.Send(ctx, toEmail, toName, VerificationMessage(m.baseURL, toName, code))
}

// SendWelcome delivers the post-verification welcome message.
func (m *Mailer) SendWelcome(ctx context.Context, toEmail, toName string) error {
	return m.Send(ctx, toEmail, toName, WelcomeMessage(toName))
}
