// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"consulta/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates bearer tokens issued by the external
// identity provider. Identity management itself stays delegated; only the
// token signature and expiration are checked here.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("accountID", subject)
		c.Next()
	}
}
