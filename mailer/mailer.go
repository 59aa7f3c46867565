// Package mailer sends the transactional emails triggered by contact
// inquiries. The SMTP client is built once at startup and injected into the
// handlers that need it.
package mailer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vietwoods/catalog-api/config"
	"github.com/vietwoods/catalog-api/models"
	gomail "github.com/wneessen/go-mail"
)

type Mailer struct {
	client  *gomail.Client
	from    string
	company string
}

// New builds the mailer from SMTP settings. Returns nil with no error when
// SMTP is not configured; callers treat a nil mailer as "email disabled".
func New(cfg *config.Configuration) (*Mailer, error) {
	if cfg.SMTPHost == "" {
		logrus.Warn("SMTP_HOST not set, outbound email disabled")
		return nil, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUsername),
			gomail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{
		client:  client,
		from:    cfg.MailFrom,
		company: cfg.CompanyEmail,
	}, nil
}

// SendInquiryConfirmation acknowledges the inquiry to the customer.
func (m *Mailer) SendInquiryConfirmation(ctx context.Context, inq models.Inquiry, reference string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(inq.Email); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("We received your inquiry (%s)", reference))
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Dear %s %s,\n\nThank you for contacting us. Your inquiry has been recorded under reference %s and our export team will reply shortly.\n\nYour message:\n%s\n",
		inq.FirstName, inq.LastName, reference, inq.Message,
	))
	return m.client.DialAndSendWithContext(ctx, msg)
}

// SendInquiryNotification forwards the inquiry to the company inbox.
func (m *Mailer) SendInquiryNotification(ctx context.Context, inq models.Inquiry, reference string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(m.company); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("New inquiry %s from %s %s", reference, inq.FirstName, inq.LastName))
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Name: %s %s\nEmail: %s\nPhone: %s\n\n%s\n",
		inq.FirstName, inq.LastName, inq.Email, inq.Phone, inq.Message,
	))
	return m.client.DialAndSendWithContext(ctx, msg)
}
