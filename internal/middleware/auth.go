package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(http.StatusUnauthorized, c.Request.URL.Path, c.Request.Method, message))
}

// AuthMiddleware verifies the bearer access token and stores the caller
// identity on the context. Missing, malformed, expired and forged tokens all
// abort with 401.
func AuthMiddleware(tokenSvc services.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c, "Missing or malformed authorization header")
			return
		}

		claims, err := tokenSvc.VerifyAccessToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		SetIdentity(c, Identity{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}
