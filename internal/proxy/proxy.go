package proxy

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/metrics"
	"pourpal-backoffice/pkg/response"
	"pourpal-backoffice/pkg/session"
)

// Config for the backend forwarding proxy.
type Config struct {
	Target    string // BACKEND_API_URL
	MountPath string // local prefix stripped before forwarding, e.g. /api
	Transport http.RoundTripper
}

// Proxy forwards every method under the mount path to the backend, swapping
// the session cookie for an Authorization header.
type Proxy struct {
	l      log.Logger
	target *url.URL
	mount  string
	rp     *httputil.ReverseProxy

	// overrides are served locally instead of forwarded, keyed by "METHOD /suffix".
	overrides map[string]gin.HandlersChain
}

func New(l log.Logger, cfg Config) (*Proxy, error) {
	if cfg.Target == "" {
		return nil, errors.New("proxy: target is required")
	}
	target, err := url.Parse(strings.TrimRight(cfg.Target, "/"))
	if err != nil {
		return nil, fmt.Errorf("proxy: invalid target: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("proxy: target %q must be absolute", cfg.Target)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = metrics.InstrumentTransport(otelhttp.NewTransport(http.DefaultTransport))
	}

	p := &Proxy{
		l:      l,
		target: target,
		mount:  strings.TrimRight(cfg.MountPath, "/"),

		overrides: map[string]gin.HandlersChain{},
	}
	p.rp = &httputil.ReverseProxy{
		Rewrite:      p.rewrite,
		Transport:    transport,
		ErrorHandler: p.errorHandler,
	}
	return p, nil
}

// Suffix returns the part of path after the mount point, "/" when empty.
func (p *Proxy) Suffix(path string) string {
	suffix := strings.TrimPrefix(path, p.mount)
	if suffix == "" {
		return "/"
	}
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	return suffix
}

func (p *Proxy) rewrite(pr *httputil.ProxyRequest) {
	out := pr.Out
	out.URL.Scheme = p.target.Scheme
	out.URL.Host = p.target.Host
	out.URL.Path = p.target.Path + p.Suffix(pr.In.URL.Path)
	out.URL.RawPath = ""
	out.URL.RawQuery = pr.In.URL.RawQuery
	out.Host = p.target.Host

	if access, _ := session.FromRequest(pr.In); access != "" {
		out.Header.Set("Authorization", "Bearer "+access)
	}
	out.Header.Del("Cookie")
}

func (p *Proxy) errorHandler(w http.ResponseWriter, r *http.Request, err error) {
	p.l.Errorf(r.Context(), "proxy: %s %s: %v", r.Method, r.URL.Path, err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	_, _ = w.Write([]byte(fmt.Sprintf(`{"error_code":%d,"message":%q}`, http.StatusBadGateway, response.DefaultErrorMessage)))
}

// Override serves method+suffix under the mount locally. The chain runs in
// order and stops once a handler aborts.
func (p *Proxy) Override(method, suffix string, chain ...gin.HandlerFunc) {
	p.overrides[method+" "+suffix] = chain
}

// Handle serves the catch-all route.
func (p *Proxy) Handle(c *gin.Context) {
	if chain, ok := p.overrides[c.Request.Method+" "+p.Suffix(c.Request.URL.Path)]; ok {
		for _, h := range chain {
			h(c)
			if c.IsAborted() {
				return
			}
		}
		return
	}
	p.rp.ServeHTTP(c.Writer, c.Request)
}

// RegisterRoutes mounts the proxy on every method under the mount path.
func RegisterRoutes(r gin.IRouter, p *Proxy) {
	r.Any(p.mount, p.Handle)
	r.Any(p.mount+"/*path", p.Handle)
}
