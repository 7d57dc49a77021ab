package http

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/middleware"
)

// RegisterRoutes maps item routes. Every route needs a session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Auth())
	{
		items.GET("", h.List)
		items.POST("", h.Create)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
