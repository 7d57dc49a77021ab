package middleware

import (
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/ratelimit"
)

// GateConfig drives the page authentication gate.
type GateConfig struct {
	Mode           Mode
	LoginRoute     string
	ProtectedRoute string
	PublicRoutes   []string
}

type Middleware struct {
	l            log.Logger
	gate         GateConfig
	loginLimiter *ratelimit.Limiter
}

func New(l log.Logger, gate GateConfig, loginLimiter *ratelimit.Limiter) Middleware {
	if gate.Mode == "" {
		gate.Mode = ModeRefresh
	}
	if gate.LoginRoute == "" {
		gate.LoginRoute = "/login"
	}
	if gate.ProtectedRoute == "" {
		gate.ProtectedRoute = "/store"
	}
	return Middleware{
		l:            l,
		gate:         gate,
		loginLimiter: loginLimiter,
	}
}
