package handler

import (
	"github.com/labstack/echo/v4"

	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
)

// sessionFrom returns the caller attached by the auth middleware.
func sessionFrom(c echo.Context) (*entity.Session, error) {
	session := deliverycontext.GetSession(c.Request().Context())
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return session, nil
}

// bindAndValidate decodes the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed request body")
	}

	return c.Validate(req)
}
