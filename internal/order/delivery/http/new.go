package http

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/middleware"
	"pourpal-backoffice/internal/order"
	"pourpal-backoffice/pkg/log"
)

type Handler interface {
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc order.UseCase
}

func New(l log.Logger, uc order.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/orders", mw.Auth(), h.List)
}
