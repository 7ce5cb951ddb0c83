package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/solterra/ventas-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, projectionHandler *ProjectionHandler, balloonHandler *BalloonHandler, streamHandler *StreamHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Financing projection routes
	projections := api.Group("/projections")
	projections.POST("/preview", projectionHandler.PreviewProjection)

	// Balloon plan routes
	balloonPlans := api.Group("/balloon-plans")
	balloonPlans.POST("/solve", balloonHandler.SolveBalloonPlan)

	// Recompute stream (upgraded connection, rate limited at handshake only)
	e.GET("/ws/projections", streamHandler.HandleProjections, middleware.RateLimitMiddleware(rateLimiter))
}
