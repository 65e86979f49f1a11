package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/castellan-host/castellan/internal/interfaces/http/handlers"
	"github.com/castellan-host/castellan/internal/interfaces/http/middleware"
)

// CastleRouteConfig contains dependencies for castle routes.
type CastleRouteConfig struct {
	CastleHandler  *handlers.CastleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCastleRoutes configures the castle listing route. Any authenticated
// customer may call it; the resolver filters entries to the caller's scope.
func SetupCastleRoutes(engine *gin.Engine, cfg *CastleRouteConfig) {
	castles := engine.Group("/api/castles")
	castles.Use(cfg.AuthMiddleware.RequireAuth())
	{
		castles.GET("", cfg.CastleHandler.ListCastles)
	}
}
