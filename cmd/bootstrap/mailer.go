package bootstrap

import (
	"housnkuh/internal/infra/mailer"
	"housnkuh/internal/pkg/config"
	"housnkuh/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config) (commands.ConfirmationMailer, error) {
	return mailer.New(cfg.SMTP, cfg.App)
}
