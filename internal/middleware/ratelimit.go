package middleware

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/pkg/response"
)

// LoginRateLimit throttles login attempts per client IP.
func (mw Middleware) LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.loginLimiter == nil {
			c.Next()
			return
		}
		if err := mw.loginLimiter.Allow(c.ClientIP()); err != nil {
			mw.l.Warnf(c.Request.Context(), "middleware.LoginRateLimit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
