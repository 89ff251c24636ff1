// Package router contains routing setup for the HTTP delivery.
package router

import (
	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/router/handler"
	"bizdir/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	BusinessHandler     *handler.BusinessHandler
	RequestHandler      *handler.RequestHandler
	SignupHandler       *handler.SignupHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Three
// tiers: public, authenticated (access gate), admin (gate + role).
func (r *router) RegisterRoutes(e *echo.Echo) {
	gate := r.params.AuthMiddleware

	// Public routes: no resolved profile required.
	e.GET("/health", handler.HealthCheck)
	e.POST("/user", r.params.UserHandler.Register)
	e.POST("/set-role", r.params.UserHandler.AssignRole)
	e.POST("/signup", r.params.SignupHandler.Create)

	// Authenticated routes: valid token resolved to a stored profile.
	authed := e.Group("", gate.Authenticate)
	{
		authed.GET("/user", r.params.UserHandler.Get)
		authed.POST("/business", r.params.BusinessHandler.Register)
		authed.GET("/businesses", r.params.BusinessHandler.List)
		authed.GET("/business", r.params.BusinessHandler.GetOwn)
		authed.PATCH("/business/payment", r.params.BusinessHandler.RenewMembership)
		authed.POST("/request", r.params.RequestHandler.Submit)
		authed.GET("/signup/:id", r.params.SignupHandler.Get)
	}

	// Admin routes: the admin role on top of the access gate.
	admin := e.Group("", gate.Authenticate, gate.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/request/:id/approve", r.params.RequestHandler.Approve)
		admin.POST("/request/:id/deny", r.params.RequestHandler.Deny)
		admin.GET("/requests", r.params.RequestHandler.List)
		admin.GET("/request/history", r.params.RequestHandler.History)
		admin.POST("/notification", r.params.NotificationHandler.Send)
		admin.GET("/notifications", r.params.NotificationHandler.List)
		admin.GET("/analytics/memberships", r.params.BusinessHandler.MembershipStats)
		admin.GET("/meta/image-patterns", r.params.NotificationHandler.ImagePatterns)
	}
}
