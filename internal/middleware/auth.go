package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"schedule-assistant/pkg/response"
)

// Auth validates the API key carried in X-API-Key or as a bearer token.
// An empty configured key disables the check for local development.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiCfg.Key == "" {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-Key")
		if key == "" {
			auth := c.GetHeader("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				key = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiCfg.Key)) != 1 {
			ctx := c.Request.Context()
			m.l.Warnf(ctx, "Auth: rejected request to %s from %s", c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
