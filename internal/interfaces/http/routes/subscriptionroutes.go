// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/castellan-host/castellan/internal/interfaces/http/handlers"
	"github.com/castellan-host/castellan/internal/interfaces/http/middleware"
	"github.com/castellan-host/castellan/internal/shared/authorization"
)

// SubscriptionRouteConfig contains dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures the subscription lifecycle routes.
// All subscription management is an admin-only surface.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/api/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	subscriptions.Use(authorization.RequireAdmin())
	{
		subscriptions.POST("", cfg.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("", cfg.SubscriptionHandler.ListSubscriptions)
		subscriptions.GET("/:id", cfg.SubscriptionHandler.GetSubscription)
		subscriptions.POST("/:id/renew", cfg.SubscriptionHandler.RenewSubscription)
		subscriptions.POST("/:id/pause", cfg.SubscriptionHandler.PauseSubscription)
		subscriptions.POST("/:id/cancel", cfg.SubscriptionHandler.CancelSubscription)
		subscriptions.DELETE("/:id", cfg.SubscriptionHandler.DeleteSubscription)
	}
}
