package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pymerp/internal/delivery/http/response"
	"pymerp/internal/usecase"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AccountHandler serves operations on the caller's own account.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{accountUC: params.AccountUC}
}

// SetCompanyClaimRequest asks for company_id on a credential's tokens. UID defaults to the caller.
type SetCompanyClaimRequest struct {
	UID       string `json:"uid"`
	CompanyID string `json:"companyId" validate:"required"`
}

// SetCompanyClaim attaches company_id to future tokens of the credential.
func (h *AccountHandler) SetCompanyClaim(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req SetCompanyClaimRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.SetCompanyClaim(c.Request().Context(), session, &usecase.SetCompanyClaimInput{
		UID:       req.UID,
		CompanyID: req.CompanyID,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Empresa asociada. Vuelve a iniciar sesión para refrescar tu token")
}

// CompletePasswordChange marks the caller's generated password as replaced.
func (h *AccountHandler) CompletePasswordChange(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.CompletePasswordChange(c.Request().Context(), session)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserDTO(user), "Contraseña actualizada")
}
