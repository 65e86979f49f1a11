package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/castellan-host/castellan/internal/shared/constants"
)

// RequireAdmin aborts the request unless the authenticated caller carries
// the admin role. AuthMiddleware must run first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyCustomerRole)
		if role != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
