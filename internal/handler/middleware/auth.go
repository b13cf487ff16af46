package middleware

import (
	"crypto/subtle"
	"net/http"

	"keyless-sync/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const internalTokenHeader = "X-Internal-Token"

// InternalAuthMiddleware guards the sync endpoints with the shared secret the
// booking backend presents. This service has no user accounts of its own.
type InternalAuthMiddleware struct {
	token string
}

func NewInternalAuthMiddleware(cfg config.Config) *InternalAuthMiddleware {
	return &InternalAuthMiddleware{token: cfg.Server.InternalToken}
}

func (m *InternalAuthMiddleware) RequireInternalToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(internalTokenHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(m.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Unauthorized"},
			})
			return
		}
		c.Next()
	}
}
