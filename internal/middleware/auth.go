package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/response"
	"pourpal-backoffice/pkg/session"
)

// Auth requires an access token, from the session cookie or a bearer header,
// and stores the caller scope in the request context.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, refresh := session.FromRequest(c.Request)
		if access == "" {
			access = bearerToken(c.GetHeader("Authorization"))
		}
		if access == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{
			AccessToken:  access,
			RefreshToken: refresh,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
