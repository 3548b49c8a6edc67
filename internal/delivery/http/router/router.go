// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pymerp/internal/delivery/http/middleware"
	"pymerp/internal/delivery/http/router/handler"
	"pymerp/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AccessRequestHandler *handler.AccessRequestHandler
	DirectoryHandler     *handler.DirectoryHandler
	ScheduleHandler      *handler.ScheduleHandler
	AccountHandler       *handler.AccountHandler
	AdminHandler         *handler.AdminHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accessRequestHandler *handler.AccessRequestHandler
	directoryHandler     *handler.DirectoryHandler
	scheduleHandler      *handler.ScheduleHandler
	accountHandler       *handler.AccountHandler
	adminHandler         *handler.AdminHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accessRequestHandler: params.AccessRequestHandler,
		directoryHandler:     params.DirectoryHandler,
		scheduleHandler:      params.ScheduleHandler,
		accountHandler:       params.AccountHandler,
		adminHandler:         params.AdminHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/access-requests", r.accessRequestHandler.RequestAccess)
	e.GET("/sitemap.xml", r.directoryHandler.Sitemap)
	e.GET("/companies/:slug/qr.png", r.directoryHandler.CompanyQR)

	directoryGroup := e.Group("/directory")
	{
		directoryGroup.GET("/companies", r.directoryHandler.SearchCompanies)
		directoryGroup.GET("/communes", r.directoryHandler.ListCommunes)
		directoryGroup.GET("/communes/lookup", r.directoryHandler.LookupCommune)
	}

	// Entrepreneur routes
	auth := r.authMiddleware.Authenticate
	e.POST("/schedules", r.scheduleHandler.SetResourceSchedule, auth)
	e.PUT("/company/schedule", r.scheduleHandler.SetCompanySchedule, auth)
	e.POST("/account/claims", r.accountHandler.SetCompanyClaim, auth)
	e.POST("/account/password-changed", r.accountHandler.CompletePasswordChange, auth)

	// Operator routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleSuperAdmin))
	{
		adminGroup.GET("/access-requests", r.adminHandler.ListAccessRequests)
		adminGroup.POST("/access-requests/:id/reject", r.adminHandler.RejectAccessRequest)
		adminGroup.POST("/users/password-reset", r.adminHandler.ResetPassword)
		adminGroup.POST("/users/delete", r.adminHandler.DeleteAccount)
		adminGroup.POST("/directory/sync", r.adminHandler.SyncDirectory)
	}
}
