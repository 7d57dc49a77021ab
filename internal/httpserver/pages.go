package httpserver

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/middleware"
	pkgErrors "pourpal-backoffice/pkg/errors"
	"pourpal-backoffice/pkg/response"
)

const storeHome = "/store/inventory"

// registerPageRoutes serves the dashboard. Page routes sit behind the gate;
// bundle assets fall through NoRoute without it.
func (srv *HTTPServer) registerPageRoutes(mw middleware.Middleware) {
	srv.gin.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusPermanentRedirect, srv.pages.RootRedirect)
	})

	gate := mw.Gate()
	srv.gin.GET("/store", gate, func(c *gin.Context) {
		c.Redirect(http.StatusPermanentRedirect, storeHome)
	})
	srv.gin.GET("/store/*page", gate, srv.servePage)
	srv.gin.GET("/login", gate, srv.servePage)

	srv.gin.NoRoute(srv.serveAsset)
}

// servePage serves the requested file or falls back to the bundle's index.html.
func (srv *HTTPServer) servePage(c *gin.Context) {
	if file, ok := srv.staticFile(c.Request.URL.Path); ok {
		c.File(file)
		return
	}
	index := filepath.Join(srv.pages.StaticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		response.Error(c, pkgErrors.ErrNotFound)
		return
	}
	c.File(index)
}

func (srv *HTTPServer) serveAsset(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		if file, ok := srv.staticFile(c.Request.URL.Path); ok {
			c.File(file)
			return
		}
	}
	response.Error(c, pkgErrors.ErrNotFound)
}

// staticFile resolves urlPath inside the static dir. Cleaning against "/"
// keeps ".." segments from leaving it.
func (srv *HTTPServer) staticFile(urlPath string) (string, bool) {
	if srv.pages.StaticDir == "" {
		return "", false
	}
	full := filepath.Join(srv.pages.StaticDir, filepath.FromSlash(path.Clean("/"+urlPath)))
	fi, err := os.Stat(full)
	if err != nil || fi.IsDir() {
		return "", false
	}
	return full, true
}
