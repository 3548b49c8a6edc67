package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/config"
	"pymerp/internal/domain/service"
)

type fakeSendClient struct {
	sent *sgmail.SGMailV3
	resp *sendgridResponse
	err  error
}

func (f *fakeSendClient) SendWithContext(_ context.Context, email *sgmail.SGMailV3) (*sendgridResponse, error) {
	f.sent = email

	return f.resp, f.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMailer(client sendClient) *sendgridMailer {
	return &sendgridMailer{
		client: client,
		from:   sgmail.NewEmail("PYMERP", "no-reply@pymerp.cl"),
		logger: newDiscardLogger(),
	}
}

func TestSendGridMailer_Send(t *testing.T) {
	client := &fakeSendClient{resp: &sendgridResponse{StatusCode: 202}}
	m := newTestMailer(client)

	err := m.Send(context.Background(), &service.Mail{
		To:      "ana@example.cl",
		Subject: "Bienvenida",
		HTML:    "<p>Hola</p>",
		Text:    "Hola",
	})
	require.NoError(t, err)

	require.NotNil(t, client.sent)
	assert.Equal(t, "Bienvenida", client.sent.Subject)
	assert.Equal(t, "no-reply@pymerp.cl", client.sent.From.Address)
	require.Len(t, client.sent.Personalizations, 1)
	assert.Equal(t, "ana@example.cl", client.sent.Personalizations[0].To[0].Address)
	require.Len(t, client.sent.Content, 2)
	assert.Equal(t, "text/plain", client.sent.Content[0].Type)
}

func TestSendGridMailer_Failures(t *testing.T) {
	m := newTestMailer(&fakeSendClient{resp: &sendgridResponse{StatusCode: 401, Body: "unauthorized"}})
	err := m.Send(context.Background(), &service.Mail{To: "ana@example.cl"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	m = newTestMailer(&fakeSendClient{err: errors.New("dial tcp")})
	assert.Error(t, m.Send(context.Background(), &service.Mail{To: "ana@example.cl"}))
}

func TestNewFromConfig(t *testing.T) {
	m, err := NewFromConfig(&config.Config{}, newDiscardLogger())
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), &service.Mail{To: "ana@example.cl"}))

	m, err = NewFromConfig(&config.Config{Mail: &config.MailConfig{Provider: config.MailProviderSendGrid, APIKey: "key"}}, newDiscardLogger())
	require.NoError(t, err)
	assert.IsType(t, &sendgridMailer{}, m)

	_, err = NewFromConfig(&config.Config{Mail: &config.MailConfig{Provider: "smtp"}}, newDiscardLogger())
	assert.Error(t, err)
}
