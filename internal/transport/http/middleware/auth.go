package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showai/connect4-engine/pkg/auth"
	"github.com/showai/connect4-engine/pkg/httputil"
)

const ClientKey = "client"

// AuthMiddleware validates a bearer JWT signed with secret. An empty
// secret disables authentication.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateAccessToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ClientKey, claims.Client)
		c.Next()
	}
}
