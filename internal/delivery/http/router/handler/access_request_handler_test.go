package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "pymerp/internal/domain/errors"
	mockUsecase "pymerp/internal/mocks/usecase"
	"pymerp/internal/usecase"
)

func newAccessRequestHandler(t *testing.T) (*AccessRequestHandler, *mockUsecase.MockProvisioningUsecase) {
	uc := mockUsecase.NewMockProvisioningUsecase(t)

	return NewAccessRequestHandler(AccessRequestHandlerParams{
		ProvisioningUC: uc,
		Logger:         slog.New(slog.DiscardHandler),
	}), uc
}

func TestAccessRequestHandler_RequestAccess(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, uc := newAccessRequestHandler(t)
		c, rec := newTestContext(http.MethodPost, "/access-requests",
			`{"fullName":"Ana Pérez","email":"Ana@Example.cl","businessName":"Café Ñuñoa","whatsapp":"+56 9 1234 5678","plan":"pro"}`, nil)

		uc.EXPECT().RequestAccess(mock.Anything, &usecase.RequestAccessInput{
			FullName:     "Ana Pérez",
			Email:        "Ana@Example.cl",
			BusinessName: "Café Ñuñoa",
			WhatsApp:     "+56 9 1234 5678",
			Plan:         "pro",
		}).Return(&usecase.RequestAccessOutput{
			RequestID:  "req-1",
			UserID:     "uid-1",
			CompanyID:  "company-1",
			Incomplete: []string{"send_emails"},
		}, nil)

		require.NoError(t, h.RequestAccess(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var data RequestAccessResponse
		env := decodeEnvelope(t, rec, &data)
		assert.True(t, env.Success)
		assert.Equal(t, RequestAccessResponse{
			RequestID:  "req-1",
			UserID:     "uid-1",
			CompanyID:  "company-1",
			Incomplete: []string{"send_emails"},
		}, data)
	})

	t.Run("missing fields never reach the use case", func(t *testing.T) {
		h, _ := newAccessRequestHandler(t)
		c, _ := newTestContext(http.MethodPost, "/access-requests", `{"email":"ana@example.cl"}`, nil)

		err := h.RequestAccess(c)

		var vErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Len(t, vErr.Fields, 3)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newAccessRequestHandler(t)
		c, _ := newTestContext(http.MethodPost, "/access-requests", `{"email":`, nil)

		assert.True(t, errors.Is(h.RequestAccess(c), domainerrors.ErrValidationFailed))
	})

	t.Run("use case error is returned", func(t *testing.T) {
		h, uc := newAccessRequestHandler(t)
		c, _ := newTestContext(http.MethodPost, "/access-requests",
			`{"fullName":"Ana","email":"ana@example.cl","businessName":"Café","whatsapp":"912345678"}`, nil)

		uc.EXPECT().RequestAccess(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		assert.True(t, errors.Is(h.RequestAccess(c), domainerrors.ErrUserAlreadyExists))
	})
}
