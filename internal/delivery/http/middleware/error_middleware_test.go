package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "pymerp/internal/domain/errors"
)

func handleError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("domain error", func(t *testing.T) {
		status, body := handleError(t, errors.Wrap(domainerrors.ErrCompanyMismatch, "set claim"))

		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "El usuario no pertenece a esta empresa", body["message"])
		assert.Equal(t, "COMPANY_MISMATCH", body["error"].(map[string]any)["code"])
	})

	t.Run("validation details", func(t *testing.T) {
		status, body := handleError(t, domainerrors.NewValidationError(domainerrors.ErrInvalidSchedule,
			domainerrors.FieldError{Field: "schedule.monday[0].end", Reason: "must be after start"}))

		assert.Equal(t, http.StatusBadRequest, status)
		details := body["error"].(map[string]any)["details"].([]any)
		assert.Equal(t, "schedule.monday[0].end", details[0].(map[string]any)["field"])
	})

	t.Run("echo error", func(t *testing.T) {
		status, body := handleError(t, echo.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "HTTP_ERROR", body["error"].(map[string]any)["code"])
	})

	t.Run("unknown error hides internals", func(t *testing.T) {
		status, body := handleError(t, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", body["error"].(map[string]any)["code"])
		assert.NotContains(t, body["message"], "pq")
	})
}
