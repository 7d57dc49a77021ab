package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/middleware"
	"pourpal-backoffice/internal/proxy"
)

// RegisterRoutes maps the session endpoints at the root and the account
// endpoints under rg. When p is set, login and logout are also answered
// locally under the proxy mount instead of being forwarded.
func RegisterRoutes(r gin.IRouter, rg *gin.RouterGroup, h Handler, mw middleware.Middleware, p *proxy.Proxy) {
	r.POST("/auth/login", mw.LoginRateLimit(), h.Login)
	r.POST("/auth/logout", h.Logout)

	if p != nil {
		p.Override(http.MethodPost, "/auth/login", mw.LoginRateLimit(), h.Login)
		p.Override(http.MethodPost, "/auth/logout", h.Logout)
	}

	account := rg.Group("/auth", mw.Auth())
	{
		account.GET("/profile", h.Profile)
		account.POST("/register/admin", h.RegisterAdmin)
	}
}
