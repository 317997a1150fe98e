// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler         *handler.AccountHandler
	SessionTokenMiddleware *middleware.SessionTokenMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	tokens         *middleware.SessionTokenMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		tokens:         params.SessionTokenMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout, r.tokens.Extract)
		authGroup.POST("/logout/all", r.accountHandler.LogoutAll, r.tokens.Require)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.tokens.Require)
	{
		userGroup.GET("/profile", r.accountHandler.GetProfile)
		userGroup.GET("/sessions", r.accountHandler.ListSessions)
	}
}
