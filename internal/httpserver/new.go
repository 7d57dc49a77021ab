package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/middleware"
	"pourpal-backoffice/internal/proxy"
	"pourpal-backoffice/internal/upload"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/querycache"
	"pourpal-backoffice/pkg/ratelimit"
	"pourpal-backoffice/pkg/restclient"
	"pourpal-backoffice/pkg/session"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Backend access
	backend *restclient.Client
	cache   *querycache.Cache
	proxy   *proxy.Proxy

	// Session and pages
	cookies      session.Options
	gate         middleware.GateConfig
	loginLimiter *ratelimit.Limiter
	pages        PagesConfig
	publicAPIURL string

	// Optional
	imageStore upload.Store
}

// PagesConfig locates the dashboard bundle.
type PagesConfig struct {
	StaticDir    string
	RootRedirect string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Backend *restclient.Client
	Cache   *querycache.Cache
	Proxy   *proxy.Proxy

	Cookies      session.Options
	Gate         middleware.GateConfig
	LoginLimiter *ratelimit.Limiter
	Pages        PagesConfig
	PublicAPIURL string

	// ImageStore enables POST /v1/uploads/images when set.
	ImageStore upload.Store
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		backend:      cfg.Backend,
		cache:        cfg.Cache,
		proxy:        cfg.Proxy,
		cookies:      cfg.Cookies,
		gate:         cfg.Gate,
		loginLimiter: cfg.LoginLimiter,
		pages:        cfg.Pages,
		publicAPIURL: cfg.PublicAPIURL,
		imageStore:   cfg.ImageStore,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.pages.RootRedirect == "" {
		srv.pages.RootRedirect = "/login"
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.backend == nil {
		return errors.New("backend client is required")
	}
	if srv.proxy == nil {
		return errors.New("proxy is required")
	}
	return nil
}
