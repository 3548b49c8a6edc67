// Package mail delivers transactional email.
package mail

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/fx"

	"pymerp/config"
	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/domain/service"
)

// sendClient is the subset of *sendgrid.Client used here.
type sendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*sendgridResponse, error)
}

// sendgridResponse mirrors rest.Response fields read here.
type sendgridResponse struct {
	StatusCode int
	Body       string
}

type sendgridClient struct {
	client *sendgrid.Client
}

func (c *sendgridClient) SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*sendgridResponse, error) {
	resp, err := c.client.SendWithContext(ctx, email)
	if err != nil {
		return nil, err
	}

	return &sendgridResponse{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}

type sendgridMailer struct {
	client sendClient
	from   *sgmail.Email
	logger *slog.Logger
}

// NewSendGridMailer sends through the SendGrid v3 API.
func NewSendGridMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	return &sendgridMailer{
		client: &sendgridClient{client: sendgrid.NewSendClient(cfg.APIKey)},
		from:   sgmail.NewEmail(cfg.FromName, cfg.From),
		logger: logger,
	}
}

func (m *sendgridMailer) Send(ctx context.Context, mail *service.Mail) error {
	message := sgmail.NewSingleEmail(m.from, mail.Subject, sgmail.NewEmail("", mail.To), mail.Text, mail.HTML)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}
	if resp.StatusCode >= 300 {
		return errors.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Email sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}

// logMailer only logs outgoing messages, for local runs without a provider.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that never delivers.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, mail *service.Mail) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Email not delivered, no mail provider configured",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}

// NewFromConfig selects the mailer by mail.provider.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Provider == "" {
		return NewLogMailer(logger), nil
	}

	switch cfg.Mail.Provider {
	case config.MailProviderSendGrid:
		return NewSendGridMailer(cfg.Mail, logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Mail.Provider)
	}
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFromConfig),
)
