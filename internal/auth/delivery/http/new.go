package http

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/auth"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/session"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Profile(c *gin.Context)
	RegisterAdmin(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      auth.UseCase
	cookies session.Options
}

// New creates a new HTTP handler for the auth domain. cookies carries the
// deployment attributes of the session cookies it issues.
func New(l log.Logger, uc auth.UseCase, cookies session.Options) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		cookies: cookies,
	}
}
