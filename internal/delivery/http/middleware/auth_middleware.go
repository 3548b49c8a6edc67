package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/usecase"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer tokens and guards operator routes.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate resolves the bearer token into a session stored on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header must be a bearer token")
		}

		ctx := c.Request().Context()
		session, err := m.accountUC.Authenticate(ctx, authHeader[len(bearerPrefix):])
		if err != nil {
			return err
		}

		ctx = deliverycontext.WithSession(ctx, session)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("uid", session.UID))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole only lets sessions with role through. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := deliverycontext.GetSession(c.Request().Context())
			if session == nil {
				return domainerrors.ErrUnauthenticated
			}
			if session.Role != role {
				return domainerrors.ErrForbidden.WrapMessage("requires role " + role.String())
			}

			return next(c)
		}
	}
}
