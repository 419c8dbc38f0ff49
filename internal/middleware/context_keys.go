package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

const identityKey = "identity"

// Identity is the authenticated caller as established by AuthMiddleware.
type Identity struct {
	UserID string
	Email  string
	Role   domain.UserRole
}

// SetIdentity stores the caller identity on the gin context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// GetIdentity returns the caller identity. The second return is false on
// routes that did not pass through AuthMiddleware.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
