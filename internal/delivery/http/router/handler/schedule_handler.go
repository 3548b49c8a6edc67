package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pymerp/internal/delivery/http/response"
	"pymerp/internal/domain/entity"
	"pymerp/internal/usecase"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
}

// ScheduleHandler stores weekly availability.
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{scheduleUC: params.ScheduleUC}
}

// SetResourceScheduleRequest targets a service or a professional. The schedule document
// is validated by the use case so the caller gets per-field diagnostics.
type SetResourceScheduleRequest struct {
	ServiceID      string `json:"serviceId"`
	ProfessionalID string `json:"professionalId"`
	Schedule       any    `json:"schedule"`
}

// SetResourceScheduleResponse names the updated resource.
type SetResourceScheduleResponse struct {
	ServiceID      string `json:"serviceId,omitempty"`
	ProfessionalID string `json:"professionalId,omitempty"`
}

// SetCompanyScheduleRequest carries the company's business hours.
type SetCompanyScheduleRequest struct {
	Schedule any `json:"schedule"`
}

// SetResourceSchedule replaces the schedule of one of the caller's services or professionals.
func (h *ScheduleHandler) SetResourceSchedule(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req SetResourceScheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.scheduleUC.SetResourceSchedule(c.Request().Context(), session, &usecase.SetResourceScheduleInput{
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Schedule:       req.Schedule,
	})
	if err != nil {
		return err
	}

	resp := SetResourceScheduleResponse{}
	if out.Kind == entity.ResourceService {
		resp.ServiceID = out.ResourceID
	} else {
		resp.ProfessionalID = out.ResourceID
	}

	return response.Success(c, http.StatusOK, resp, "Horario actualizado")
}

// SetCompanySchedule replaces the business hours of the caller's company.
func (h *ScheduleHandler) SetCompanySchedule(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req SetCompanyScheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.scheduleUC.SetCompanySchedule(c.Request().Context(), session, req.Schedule); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Horario actualizado")
}
