// Package http wires repositories, use cases, handlers and middleware into
// the Gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	castleUC "github.com/castellan-host/castellan/internal/application/castle/usecases"
	customerUC "github.com/castellan-host/castellan/internal/application/customer/usecases"
	subscriptionUC "github.com/castellan-host/castellan/internal/application/subscription/usecases"
	"github.com/castellan-host/castellan/internal/domain/castle"
	"github.com/castellan-host/castellan/internal/infrastructure/auth"
	"github.com/castellan-host/castellan/internal/infrastructure/config"
	"github.com/castellan-host/castellan/internal/infrastructure/ratelimit"
	"github.com/castellan-host/castellan/internal/infrastructure/repository"
	"github.com/castellan-host/castellan/internal/interfaces/http/handlers"
	"github.com/castellan-host/castellan/internal/interfaces/http/middleware"
	"github.com/castellan-host/castellan/internal/interfaces/http/routes"
	"github.com/castellan-host/castellan/internal/shared/constants"
	"github.com/castellan-host/castellan/internal/shared/logger"
	"github.com/castellan-host/castellan/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	subscriptionHandler *handlers.SubscriptionHandler
	customerHandler     *handlers.CustomerHandler
	castleHandler       *handlers.CastleHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         ratelimit.RateLimiter
	cfg                 *config.Config
	logger              logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	resolver castle.Resolver,
	cfg *config.Config,
	log logger.Interface,
) (*Router, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))

	if err := handlers.RegisterValidations(); err != nil {
		return nil, err
	}

	engine := gin.New()

	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	renewalRepo := repository.NewRenewalRepository(db, log)
	customerRepo := repository.NewCustomerRepository(db, log)

	passwordService := auth.NewPasswordService(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		subscriptionUC.NewCreateSubscriptionUseCase(subscriptionRepo, customerRepo, log),
		subscriptionUC.NewGetSubscriptionUseCase(subscriptionRepo, renewalRepo, log),
		subscriptionUC.NewListSubscriptionsUseCase(subscriptionRepo, log),
		subscriptionUC.NewRenewSubscriptionUseCase(subscriptionRepo, renewalRepo, log),
		subscriptionUC.NewPauseSubscriptionUseCase(subscriptionRepo, log),
		subscriptionUC.NewCancelSubscriptionUseCase(subscriptionRepo, log),
		subscriptionUC.NewDeleteSubscriptionUseCase(subscriptionRepo, renewalRepo, log),
		log,
	)

	customerHandler := handlers.NewCustomerHandler(
		customerUC.NewCreateCustomerUseCase(customerRepo, passwordService, log),
		customerUC.NewGetCustomerUseCase(customerRepo, log),
		customerUC.NewListCustomersUseCase(customerRepo, subscriptionRepo, log),
		customerUC.NewUpdateCustomerUseCase(customerRepo, passwordService, log),
		customerUC.NewDeleteCustomerUseCase(customerRepo, subscriptionRepo, renewalRepo, log),
		log,
	)

	castleHandler := handlers.NewCastleHandler(
		castleUC.NewListCastlesUseCase(customerRepo, resolver, log),
		log,
	)

	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine:              engine,
		subscriptionHandler: subscriptionHandler,
		customerHandler:     customerHandler,
		castleHandler:       castleHandler,
		authMiddleware:      middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:         limiter,
		cfg:                 cfg,
		logger:              log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	if r.rateLimiter != nil {
		r.engine.Use(middleware.RateLimit(r.rateLimiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   r.cfg.RateLimit.RequestsPerHour,
		}, r.logger))
	}

	r.engine.GET("/health", r.healthCheck)

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupCustomerRoutes(r.engine, &routes.CustomerRouteConfig{
		CustomerHandler: r.customerHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupCastleRoutes(r.engine, &routes.CastleRouteConfig{
		CastleHandler:  r.castleHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine exposes the underlying Gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) healthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status": "ok",
	})
}

// ginMode maps the configured server mode onto one of the three modes Gin
// accepts; gin.SetMode panics on anything else. "test" matches both
// gin.TestMode and the test environment name.
func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, constants.EnvProduction:
		return gin.ReleaseMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
