package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pourpal-backoffice/internal/middleware"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/internal/proxy"
	"pourpal-backoffice/pkg/metrics"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.gate, srv.loginLimiter)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}
	srv.registerPageRoutes(mw)

	// The catch-all goes last so overrides registered by domains are in place.
	proxy.RegisterRoutes(srv.gin, srv.proxy)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID(), mw.AccessLog(), mw.Metrics())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Cookie mode: production (secure=%t)", srv.cookies.Secure)
	} else {
		srv.l.Infof(ctx, "Cookie mode: %s (secure=%t)", srv.environment, srv.cookies.Secure)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/client-config", srv.clientConfig)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// ServeHTTP lets the server be exercised without a listener.
func (srv *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.gin.ServeHTTP(w, r)
}
