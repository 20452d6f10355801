// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hypeup/internal/delivery/http/middleware"
	"hypeup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ApplicationHandler *handler.ApplicationHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	ChatbotHandler     *handler.ChatbotHandler
	AuthHandler        *handler.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	applicationHandler *handler.ApplicationHandler
	analyticsHandler   *handler.AnalyticsHandler
	chatbotHandler     *handler.ChatbotHandler
	authHandler        *handler.AuthHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		applicationHandler: params.ApplicationHandler,
		analyticsHandler:   params.AnalyticsHandler,
		chatbotHandler:     params.ChatbotHandler,
		authHandler:        params.AuthHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Public marketing-site endpoints
		api.POST("/streamer-application", r.applicationHandler.Submit)
		api.POST("/analytics/page-view", r.analyticsHandler.TrackPageView)
		api.POST("/chatbot", r.chatbotHandler.Converse)
	}

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/status", r.authHandler.Status)
	}

	// Dashboard routes behind the admin gate
	adminGate := r.authMiddleware.RequireAdmin
	{
		api.GET("/streamer-applications", r.applicationHandler.List, adminGate)
		api.GET("/streamer-applications/:id", r.applicationHandler.Get, adminGate)
		api.GET("/analytics", r.analyticsHandler.Summary, adminGate)
	}
}
