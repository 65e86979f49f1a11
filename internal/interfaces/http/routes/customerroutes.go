package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/castellan-host/castellan/internal/interfaces/http/handlers"
	"github.com/castellan-host/castellan/internal/interfaces/http/middleware"
	"github.com/castellan-host/castellan/internal/shared/authorization"
)

// CustomerRouteConfig contains dependencies for customer routes.
type CustomerRouteConfig struct {
	CustomerHandler *handlers.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCustomerRoutes configures the customer management routes.
// All customer management is an admin-only surface.
func SetupCustomerRoutes(engine *gin.Engine, cfg *CustomerRouteConfig) {
	customers := engine.Group("/api/customers")
	customers.Use(cfg.AuthMiddleware.RequireAuth())
	customers.Use(authorization.RequireAdmin())
	{
		customers.POST("", cfg.CustomerHandler.CreateCustomer)
		customers.GET("", cfg.CustomerHandler.ListCustomers)
		customers.GET("/:id", cfg.CustomerHandler.GetCustomer)
		customers.PUT("/:id", cfg.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:id", cfg.CustomerHandler.DeleteCustomer)
	}
}
