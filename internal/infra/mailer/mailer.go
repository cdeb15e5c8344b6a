package mailer

import (
	"context"
	"fmt"
	"net/url"

	"housnkuh/internal/pkg/config"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/commands"

	"github.com/wneessen/go-mail"
)

// SMTPMailer sends vendor confirmation mails over SMTP.
type SMTPMailer struct {
	client   *mail.Client
	from     string
	fromName string
	baseURL  string
}

func New(cfg config.SMTPConfig, app config.AppConfig) (commands.ConfirmationMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize smtp client")
	}

	return &SMTPMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		baseURL:  app.BaseURL,
	}, nil
}

func (m *SMTPMailer) SendConfirmation(ctx context.Context, recipient, name, confirmationToken string) error {
	link := fmt.Sprintf("%s/vendor/confirm?token=%s", m.baseURL, url.QueryEscape(confirmationToken))

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return errs.Wrap(err, "failed to set from address")
	}
	if err := msg.To(recipient); err != nil {
		return errs.Wrap(err, "failed to set to address")
	}
	msg.Subject("Bitte bestätige deine Registrierung")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hallo %s,\n\n"+
			"danke für deine Registrierung bei housnkuh. Bitte bestätige deine "+
			"E-Mail-Adresse über den folgenden Link:\n\n%s\n\n"+
			"Dein housnkuh-Team\n",
		name, link,
	))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send confirmation mail")
	}
	return nil
}
