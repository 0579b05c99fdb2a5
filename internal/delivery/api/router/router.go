// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"payverify/internal/delivery/api/middleware"
	"payverify/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VerificationHandler *handler.VerificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	verificationHandler *handler.VerificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		verificationHandler: params.VerificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/test", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/me", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	paymentsGroup := api.Group("/employeepayments")
	{
		paymentsGroup.POST("/verify-account", r.verificationHandler.VerifyAccount)
		paymentsGroup.POST("/verify-swift", r.verificationHandler.VerifySwift)
	}
}
