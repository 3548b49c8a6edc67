package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/delivery/http/response"
	"pymerp/internal/domain/entity"
	"pymerp/internal/usecase"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the operator dashboard.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// RejectAccessRequestRequest carries an optional rejection reason.
type RejectAccessRequestRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// ResetPasswordRequest names the account to reset.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordResponse reports the reset outcome.
type ResetPasswordResponse struct {
	Email   string `json:"email"`
	Created bool   `json:"created"`
	Emailed bool   `json:"emailed"`
}

// DeleteAccountRequest names the account and optional extra documents to remove.
type DeleteAccountRequest struct {
	Email     string `json:"email" validate:"required,email"`
	CompanyID string `json:"companyId"`
	UserID    string `json:"userId"`
}

// DeleteAccountResponse lists what was removed.
type DeleteAccountResponse struct {
	AuthDeleted  bool     `json:"authDeleted"`
	DeletedPaths []string `json:"deletedPaths"`
}

// SyncDirectoryResponse reports the geohash refresh.
type SyncDirectoryResponse struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// ListAccessRequests lists requests newest first, optionally filtered by ?status=.
func (h *AdminHandler) ListAccessRequests(c echo.Context) error {
	status := entity.AccessRequestStatus(c.QueryParam("status"))

	requests, err := h.adminUC.ListAccessRequests(c.Request().Context(), status)
	if err != nil {
		return err
	}

	out := make([]AccessRequestDTO, 0, len(requests))
	for _, r := range requests {
		out = append(out, newAccessRequestDTO(r))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// RejectAccessRequest rejects a pending request.
func (h *AdminHandler) RejectAccessRequest(c echo.Context) error {
	var req RejectAccessRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rejected, err := h.adminUC.RejectAccessRequest(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newAccessRequestDTO(rejected), "Solicitud rechazada")
}

// ResetPassword sets a fresh password on the account and emails it.
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.adminUC.ResetPassword(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ResetPasswordResponse{
		Email:   out.Email,
		Created: out.Created,
		Emailed: out.Emailed,
	}, "Contraseña restablecida")
}

// DeleteAccount removes the credential and documents of an account.
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	var req DeleteAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.adminUC.DeleteAccount(c.Request().Context(), &usecase.DeleteAccountInput{
		Email:     req.Email,
		CompanyID: req.CompanyID,
		UserID:    req.UserID,
	})
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Account deleted by operator",
		slog.String("email", req.Email),
		slog.Int("deletedPaths", len(out.DeletedPaths)),
	)

	return response.Success(c, http.StatusOK, DeleteAccountResponse{
		AuthDeleted:  out.AuthDeleted,
		DeletedPaths: out.DeletedPaths,
	}, "Cuenta eliminada")
}

// SyncDirectory recomputes public company geohashes.
func (h *AdminHandler) SyncDirectory(c echo.Context) error {
	out, err := h.adminUC.SyncDirectory(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, SyncDirectoryResponse{Updated: out.Updated, Skipped: out.Skipped}, "")
}
