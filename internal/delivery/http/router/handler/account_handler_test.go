package handler

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	mockUsecase "pymerp/internal/mocks/usecase"
	"pymerp/internal/usecase"
)

func newAccountHandler(t *testing.T) (*AccountHandler, *mockUsecase.MockAccountUsecase) {
	uc := mockUsecase.NewMockAccountUsecase(t)

	return NewAccountHandler(AccountHandlerParams{AccountUC: uc}), uc
}

func TestAccountHandler_SetCompanyClaim(t *testing.T) {
	t.Run("own claim", func(t *testing.T) {
		h, uc := newAccountHandler(t)
		c, rec := newTestContext(http.MethodPost, "/account/claims", `{"companyId":"company-1"}`, ownerSession)

		uc.EXPECT().SetCompanyClaim(mock.Anything, ownerSession, &usecase.SetCompanyClaimInput{CompanyID: "company-1"}).Return(nil)

		require.NoError(t, h.SetCompanyClaim(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("company id required", func(t *testing.T) {
		h, _ := newAccountHandler(t)
		c, _ := newTestContext(http.MethodPost, "/account/claims", `{"uid":"uid-2"}`, ownerSession)

		var vErr *domainerrors.ValidationError
		require.True(t, errors.As(h.SetCompanyClaim(c), &vErr))
		assert.Equal(t, "companyId", vErr.Fields[0].Field)
	})

	t.Run("mismatch", func(t *testing.T) {
		h, uc := newAccountHandler(t)
		c, _ := newTestContext(http.MethodPost, "/account/claims", `{"companyId":"company-9"}`, ownerSession)

		uc.EXPECT().SetCompanyClaim(mock.Anything, ownerSession, mock.Anything).Return(domainerrors.ErrCompanyMismatch)

		assert.True(t, errors.Is(h.SetCompanyClaim(c), domainerrors.ErrCompanyMismatch))
	})
}

func TestAccountHandler_CompletePasswordChange(t *testing.T) {
	h, uc := newAccountHandler(t)
	c, rec := newTestContext(http.MethodPost, "/account/password-changed", "", ownerSession)

	uc.EXPECT().CompletePasswordChange(mock.Anything, ownerSession).Return(&entity.User{
		ID:        "uid-1",
		Email:     "ana@example.cl",
		Status:    entity.UserStatusActive,
		Role:      entity.RoleEntrepreneur,
		CompanyID: "company-1",
	}, nil)

	require.NoError(t, h.CompletePasswordChange(c))

	var data UserDTO
	decodeEnvelope(t, rec, &data)
	assert.Equal(t, "ACTIVE", data.Status)
	assert.Equal(t, "company-1", data.CompanyID)
}
