package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"pymerp/internal/errors"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrCompanyNotFound.WithDetails("company c1")

	assert.True(t, errors.Is(err, ErrCompanyNotFound))
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.Equal(t, "company c1", err.Details())
}

func TestToResponse(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		status, resp := ToResponse(errors.Wrap(ErrForbidden, "set claim"))

		assert.Equal(t, http.StatusForbidden, status)
		assert.False(t, resp.Success)
		assert.Equal(t, "FORBIDDEN", resp.Error.Code)
		assert.Equal(t, ErrForbidden.Message(), resp.Message)
	})

	t.Run("validation error carries fields", func(t *testing.T) {
		vErr := NewValidationError(ErrInvalidSchedule, FieldError{Field: "monday[0].start", Reason: "is required"})
		status, resp := ToResponse(vErr)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_SCHEDULE", resp.Error.Code)
		assert.Equal(t, []FieldError{{Field: "monday[0].start", Reason: "is required"}}, resp.Error.Details)
		assert.True(t, errors.Is(vErr, ErrInvalidSchedule))
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		status, resp := ToResponse(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
		assert.Nil(t, resp.Error.Details)
	})
}
