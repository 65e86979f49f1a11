package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castellan-host/castellan/internal/infrastructure/ratelimit"
	"github.com/castellan-host/castellan/internal/shared/logger"
	"github.com/castellan-host/castellan/internal/shared/utils"
)

// RateLimit enforces the per-client request budget keyed by client IP.
// Limiter failures let the request through so a Redis outage never takes
// the API down with it.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
