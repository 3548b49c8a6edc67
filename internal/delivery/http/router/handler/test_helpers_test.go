package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/delivery/http/validator"
	"pymerp/internal/domain/entity"
)

var ownerSession = &entity.Session{
	UID:       "uid-1",
	Email:     "ana@example.cl",
	Role:      entity.RoleEntrepreneur,
	CompanyID: "company-1",
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestContext builds an echo context for target with an optional JSON body and session.
func newTestContext(method, target, body string, session *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if session != nil {
		req = req.WithContext(deliverycontext.WithSession(context.Background(), session))
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}

	return env
}
