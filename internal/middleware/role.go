package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// RequireRoles aborts with 403 unless the authenticated caller holds one of
// the given roles. Must run after AuthMiddleware.
func RequireRoles(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}
		for _, role := range roles {
			if id.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(http.StatusForbidden, c.Request.URL.Path, c.Request.Method, "Insufficient permissions"))
	}
}
