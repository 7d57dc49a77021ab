package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/pkg/session"
)

// Mode selects which session signals the gate looks at.
type Mode string

const (
	// ModeRefresh tracks both the access and the refresh token.
	ModeRefresh Mode = "refresh"
	// ModeAccess only tracks the access token.
	ModeAccess Mode = "access"
)

type RouteClass int

const (
	ClassProtected RouteClass = iota
	ClassPublic
	ClassAuthentication
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectProtected
)

func (d Decision) String() string {
	switch d {
	case RedirectLogin:
		return "redirect_login"
	case RedirectProtected:
		return "redirect_protected"
	default:
		return "allow"
	}
}

// Decide is the stateless gate transition for one request.
func Decide(mode Mode, class RouteClass, hasAccess, hasRefresh bool) Decision {
	if mode == ModeAccess {
		switch {
		case class == ClassAuthentication && hasAccess:
			return RedirectProtected
		case class != ClassAuthentication && !hasAccess:
			return RedirectLogin
		default:
			return Allow
		}
	}

	switch {
	case class == ClassAuthentication && hasRefresh:
		return RedirectProtected
	case class == ClassAuthentication:
		// Sending the login page to itself would loop.
		return Allow
	case class == ClassPublic || hasAccess:
		return Allow
	case !hasRefresh:
		return RedirectLogin
	default:
		// Access token expired but refresh token still present: let the page refresh it.
		return Allow
	}
}

// Classify returns the route class of path.
func (g GateConfig) Classify(path string) RouteClass {
	if path == g.LoginRoute {
		return ClassAuthentication
	}
	for _, p := range g.PublicRoutes {
		if path == p || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return ClassPublic
		}
	}
	return ClassProtected
}

// Gate guards page routes with temporary redirects.
func (mw Middleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		path := c.Request.URL.Path
		class := mw.gate.Classify(path)

		access, refresh := session.FromRequest(c.Request)
		d := Decide(mw.gate.Mode, class, access != "", refresh != "")

		switch d {
		case RedirectLogin:
			mw.l.Debugf(ctx, "middleware.Gate: %s -> %s", path, mw.gate.LoginRoute)
			c.Redirect(http.StatusTemporaryRedirect, mw.gate.LoginRoute)
			c.Abort()
		case RedirectProtected:
			mw.l.Debugf(ctx, "middleware.Gate: %s -> %s", path, mw.gate.ProtectedRoute)
			c.Redirect(http.StatusTemporaryRedirect, mw.gate.ProtectedRoute)
			c.Abort()
		default:
			c.Next()
		}
	}
}
