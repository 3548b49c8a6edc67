package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pymerp/internal/delivery/http/response"
	"pymerp/internal/usecase"
)

// AccessRequestHandlerParams holds dependencies for AccessRequestHandler, injected by Fx.
type AccessRequestHandlerParams struct {
	fx.In

	ProvisioningUC usecase.ProvisioningUsecase
	Logger         *slog.Logger
}

// AccessRequestHandler serves the public signup form.
type AccessRequestHandler struct {
	provisioningUC usecase.ProvisioningUsecase
	logger         *slog.Logger
}

// NewAccessRequestHandler is the constructor for AccessRequestHandler
func NewAccessRequestHandler(params AccessRequestHandlerParams) *AccessRequestHandler {
	return &AccessRequestHandler{
		provisioningUC: params.ProvisioningUC,
		logger:         params.Logger,
	}
}

// RequestAccessRequest is the signup form body. Fields are sanitized by the use case.
type RequestAccessRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	WhatsApp     string `json:"whatsapp" validate:"required"`
	Plan         string `json:"plan"`
	Language     string `json:"language"`
}

// RequestAccessResponse identifies the provisioned tenant.
type RequestAccessResponse struct {
	RequestID  string   `json:"requestId"`
	UserID     string   `json:"userId"`
	CompanyID  string   `json:"companyId"`
	Incomplete []string `json:"incomplete,omitempty"`
}

// RequestAccess provisions a tenant for the submitted form.
func (h *AccessRequestHandler) RequestAccess(c echo.Context) error {
	var req RequestAccessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.provisioningUC.RequestAccess(c.Request().Context(), &usecase.RequestAccessInput{
		FullName:     req.FullName,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		WhatsApp:     req.WhatsApp,
		Plan:         req.Plan,
		Language:     req.Language,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, RequestAccessResponse{
		RequestID:  out.RequestID,
		UserID:     out.UserID,
		CompanyID:  out.CompanyID,
		Incomplete: out.Incomplete,
	}, "Cuenta creada. Revisa tu correo para obtener tus credenciales")
}
