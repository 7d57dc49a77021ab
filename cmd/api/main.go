package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"pourpal-backoffice/config"
	_ "pourpal-backoffice/docs" // Swagger docs
	"pourpal-backoffice/internal/httpserver"
	"pourpal-backoffice/internal/middleware"
	"pourpal-backoffice/internal/proxy"
	"pourpal-backoffice/internal/upload"
	"pourpal-backoffice/pkg/imagestore"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/metrics"
	"pourpal-backoffice/pkg/querycache"
	"pourpal-backoffice/pkg/ratelimit"
	"pourpal-backoffice/pkg/restclient"
	"pourpal-backoffice/pkg/session"
	"pourpal-backoffice/pkg/validation"
)

// @title       PourPal Backoffice API
// @description Session gateway and inventory API for the PourPal retail backoffice.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting PourPal backoffice...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend API: %s", cfg.Backend.APIURL)

	// 3. Validation rules used by request binding
	if err := validation.RegisterWithGin(); err != nil {
		logger.Error(ctx, "Failed to register validation rules: ", err)
		return
	}

	// 4. Backend access: traced and counted transport shared by client and proxy
	transport := metrics.InstrumentTransport(otelhttp.NewTransport(http.DefaultTransport))
	backend := restclient.New(restclient.Options{
		BaseURL: cfg.Backend.APIURL,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Backend.Timeout,
		},
	})

	apiProxy, err := proxy.New(logger, proxy.Config{
		Target:    cfg.Backend.APIURL,
		MountPath: cfg.Proxy.MountPath,
		Transport: transport,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize proxy: ", err)
		return
	}

	// 5. Image store (optional)
	var store upload.Store
	if cfg.Cloudinary.URL != "" {
		cld, cldErr := imagestore.NewCloudinary(cfg.Cloudinary.URL, cfg.Cloudinary.Folder)
		if cldErr != nil {
			logger.Warnf(ctx, "Cloudinary not available (optional): %v", cldErr)
		} else {
			store = cld
			logger.Info(ctx, "Cloudinary image store initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Backend:     backend,
		Cache:       querycache.New(cfg.Cache.Size, cfg.Cache.TTL),
		Proxy:       apiProxy,
		Cookies: session.Options{
			Secure: cfg.Cookie.Secure,
			Path:   cfg.Cookie.Path,
			Domain: cfg.Cookie.Domain,
		},
		Gate: middleware.GateConfig{
			Mode:           middleware.Mode(cfg.Auth.GateMode),
			LoginRoute:     cfg.Auth.LoginRoute,
			ProtectedRoute: cfg.Auth.ProtectedRoute,
			PublicRoutes:   cfg.Auth.PublicRoutes,
		},
		LoginLimiter: ratelimit.New(cfg.LoginRateLimit.PerMin),
		Pages: httpserver.PagesConfig{
			StaticDir:    cfg.Pages.StaticDir,
			RootRedirect: cfg.Pages.RootRedirect,
		},
		PublicAPIURL: cfg.Backend.PublicAPIURL,
		ImageStore:   store,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
