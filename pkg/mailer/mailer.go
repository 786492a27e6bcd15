// Package mailer sends transactional email through the Resend API.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer sends one templated message to one recipient per call.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type resendMailer struct {
	client *resend.Client
	from   string
	log    *zap.Logger
}

func NewResendMailer(apiKey, from string, log *zap.Logger) Mailer {
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *resendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	m.log.Info("Email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("email_id", sent.Id),
	)
	return nil
}
