package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/live_location_system/internal/identity"
	"github.com/sirupsen/logrus"
)

const identityContextKey = "identity"

// JWTAuthMiddleware - middleware для аутентификации по JWT-токену.
// Личность пользователя кладется в контекст запроса.
func JWTAuthMiddleware(manager *identity.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Authorization token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		ident, err := manager.Verify(token)
		if err != nil {
			log.WithError(err).Warn("Invalid authorization token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(identityContextKey, ident)
		c.Next()
	}
}

// identityFromContext достает личность пользователя, положенную middleware
func identityFromContext(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(identityContextKey)
	if !exists {
		return identity.Identity{}, false
	}
	ident, ok := v.(identity.Identity)
	return ident, ok
}
