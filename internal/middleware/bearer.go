package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// BearerTokenAuth guards a route with a static Bearer token. An empty token
// disables the check.
func BearerTokenAuth(realm, token string) gin.HandlerFunc {
	challenge := `Bearer realm="` + realm + `"`

	reject := func(c *gin.Context, message string) {
		c.Header("WWW-Authenticate", challenge)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": message,
		})
	}

	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			reject(c, "Bearer token required")
			return
		}

		provided := strings.TrimPrefix(authHeader, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			reject(c, "Invalid token")
			return
		}

		c.Next()
	}
}
