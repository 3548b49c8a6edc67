package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	mockUsecase "pymerp/internal/mocks/usecase"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("session attached", func(t *testing.T) {
		accountUC := mockUsecase.NewMockAccountUsecase(t)
		m := NewAuthMiddleware(accountUC)
		c, _ := newAuthContext("Bearer token-1")

		session := &entity.Session{UID: "uid-1", Role: entity.RoleEntrepreneur, CompanyID: "company-1"}
		accountUC.EXPECT().Authenticate(mock.Anything, "token-1").Return(session, nil)

		var got *entity.Session
		err := m.Authenticate(func(c echo.Context) error {
			got = deliverycontext.GetSession(c.Request().Context())

			return nil
		})(c)
		require.NoError(t, err)
		assert.Same(t, session, got)
	})

	t.Run("lowercase scheme accepted", func(t *testing.T) {
		accountUC := mockUsecase.NewMockAccountUsecase(t)
		m := NewAuthMiddleware(accountUC)
		c, _ := newAuthContext("bearer token-1")

		accountUC.EXPECT().Authenticate(mock.Anything, "token-1").Return(&entity.Session{UID: "uid-1"}, nil)

		require.NoError(t, m.Authenticate(func(echo.Context) error { return nil })(c))
	})

	tests := []struct {
		name   string
		header string
		want   error
	}{
		{"missing header", "", domainerrors.ErrUnauthenticated},
		{"basic auth", "Basic dXNlcjpwYXNz", domainerrors.ErrInvalidToken},
		{"empty bearer", "Bearer ", domainerrors.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockUsecase.NewMockAccountUsecase(t))
			c, _ := newAuthContext(tt.header)

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next must not run")

				return nil
			})(c)
			assert.True(t, errors.Is(err, tt.want))
		})
	}

	t.Run("invalid token", func(t *testing.T) {
		accountUC := mockUsecase.NewMockAccountUsecase(t)
		m := NewAuthMiddleware(accountUC)
		c, _ := newAuthContext("Bearer expired")

		accountUC.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken)

		err := m.Authenticate(func(echo.Context) error { return nil })(c)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockAccountUsecase(t))
	guard := m.RequireRole(entity.RoleSuperAdmin)(func(echo.Context) error { return nil })

	withSession := func(session *entity.Session) echo.Context {
		c, _ := newAuthContext("")
		if session != nil {
			c.SetRequest(c.Request().WithContext(deliverycontext.WithSession(c.Request().Context(), session)))
		}

		return c
	}

	assert.NoError(t, guard(withSession(&entity.Session{UID: "op-1", Role: entity.RoleSuperAdmin})))
	assert.True(t, errors.Is(guard(withSession(&entity.Session{UID: "uid-1", Role: entity.RoleEntrepreneur})), domainerrors.ErrForbidden))
	assert.True(t, errors.Is(guard(withSession(nil)), domainerrors.ErrUnauthenticated))
}
