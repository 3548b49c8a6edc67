package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	mockUsecase "pymerp/internal/mocks/usecase"
	"pymerp/internal/usecase"
)

var adminSession = &entity.Session{UID: "op-1", Email: "ops@pymerp.cl", Role: entity.RoleSuperAdmin}

func newAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	uc := mockUsecase.NewMockAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{AdminUC: uc, Logger: slog.New(slog.DiscardHandler)}), uc
}

func TestAdminHandler_ListAccessRequests(t *testing.T) {
	h, uc := newAdminHandler(t)
	c, rec := newTestContext(http.MethodGet, "/admin/access-requests?status=PENDING", "", adminSession)

	created := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().ListAccessRequests(mock.Anything, entity.AccessRequestPending).Return([]*entity.AccessRequest{{
		ID:        "req-1",
		Email:     "ana@example.cl",
		Plan:      entity.PlanBasic,
		Status:    entity.AccessRequestPending,
		CreatedAt: created,
	}}, nil)

	require.NoError(t, h.ListAccessRequests(c))

	var data []AccessRequestDTO
	decodeEnvelope(t, rec, &data)
	require.Len(t, data, 1)
	assert.Equal(t, "PENDING", data[0].Status)
	assert.Equal(t, "BASIC", data[0].Plan)
	assert.True(t, created.Equal(data[0].CreatedAt))
}

func TestAdminHandler_RejectAccessRequest(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		h, uc := newAdminHandler(t)
		c, rec := newTestContext(http.MethodPost, "/admin/access-requests/req-1/reject", `{"reason":"duplicada"}`, adminSession)
		c.SetParamNames("id")
		c.SetParamValues("req-1")

		uc.EXPECT().RejectAccessRequest(mock.Anything, "req-1", "duplicada").
			Return(&entity.AccessRequest{ID: "req-1", Status: entity.AccessRequestRejected, RejectionReason: "duplicada"}, nil)

		require.NoError(t, h.RejectAccessRequest(c))

		var data AccessRequestDTO
		decodeEnvelope(t, rec, &data)
		assert.Equal(t, "REJECTED", data.Status)
	})

	t.Run("empty body", func(t *testing.T) {
		h, uc := newAdminHandler(t)
		c, _ := newTestContext(http.MethodPost, "/admin/access-requests/req-1/reject", "", adminSession)
		c.SetParamNames("id")
		c.SetParamValues("req-1")

		uc.EXPECT().RejectAccessRequest(mock.Anything, "req-1", "").Return(nil, domainerrors.ErrAccessRequestProcessed)

		assert.True(t, errors.Is(h.RejectAccessRequest(c), domainerrors.ErrAccessRequestProcessed))
	})
}

func TestAdminHandler_ResetPassword(t *testing.T) {
	t.Run("reset", func(t *testing.T) {
		h, uc := newAdminHandler(t)
		c, rec := newTestContext(http.MethodPost, "/admin/users/password-reset", `{"email":"ana@example.cl"}`, adminSession)

		uc.EXPECT().ResetPassword(mock.Anything, "ana@example.cl").
			Return(&usecase.ResetPasswordOutput{Email: "ana@example.cl", Emailed: true}, nil)

		require.NoError(t, h.ResetPassword(c))

		var data ResetPasswordResponse
		decodeEnvelope(t, rec, &data)
		assert.Equal(t, ResetPasswordResponse{Email: "ana@example.cl", Emailed: true}, data)
	})

	t.Run("invalid email", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, _ := newTestContext(http.MethodPost, "/admin/users/password-reset", `{"email":"ana"}`, adminSession)

		assert.True(t, errors.Is(h.ResetPassword(c), domainerrors.ErrValidationFailed))
	})
}

func TestAdminHandler_DeleteAccount(t *testing.T) {
	h, uc := newAdminHandler(t)
	c, rec := newTestContext(http.MethodPost, "/admin/users/delete",
		`{"email":"ana@example.cl","companyId":"company-1"}`, adminSession)

	uc.EXPECT().DeleteAccount(mock.Anything, &usecase.DeleteAccountInput{Email: "ana@example.cl", CompanyID: "company-1"}).
		Return(&usecase.DeleteAccountOutput{AuthDeleted: true, DeletedPaths: []string{"users/uid-1", "companies/company-1"}}, nil)

	require.NoError(t, h.DeleteAccount(c))

	var data DeleteAccountResponse
	decodeEnvelope(t, rec, &data)
	assert.True(t, data.AuthDeleted)
	assert.Equal(t, []string{"users/uid-1", "companies/company-1"}, data.DeletedPaths)
}

func TestAdminHandler_SyncDirectory(t *testing.T) {
	h, uc := newAdminHandler(t)
	c, rec := newTestContext(http.MethodPost, "/admin/directory/sync", "", adminSession)

	uc.EXPECT().SyncDirectory(mock.Anything).Return(&usecase.SyncDirectoryOutput{Updated: 3, Skipped: 1}, nil)

	require.NoError(t, h.SyncDirectory(c))

	var data SyncDirectoryResponse
	decodeEnvelope(t, rec, &data)
	assert.Equal(t, SyncDirectoryResponse{Updated: 3, Skipped: 1}, data)
}
