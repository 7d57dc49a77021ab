package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourpal-backoffice/internal/middleware"
	"pourpal-backoffice/internal/proxy"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/querycache"
	"pourpal-backoffice/pkg/restclient"
	"pourpal-backoffice/pkg/session"
)

type stubStore struct{}

func (stubStore) Upload(ctx context.Context, file any) (string, error) {
	return "https://cdn.example/x.png", nil
}

func newServer(t *testing.T, withStore bool) (*HTTPServer, *string) {
	t.Helper()

	lastPath := new(string)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*lastPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[],"paging":{"page_number":1,"page_size":10,"total_pages":0,"total_count":0}}`))
	}))
	t.Cleanup(backend.Close)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	p, err := proxy.New(log.NewNop(), proxy.Config{Target: backend.URL, MountPath: "/api", Transport: http.DefaultTransport})
	require.NoError(t, err)

	cfg := Config{
		Port:         8080,
		Mode:         "test",
		Environment:  "development",
		Backend:      restclient.New(restclient.Options{BaseURL: backend.URL}),
		Cache:        querycache.New(16, 0),
		Proxy:        p,
		Cookies:      session.DefaultOptions(),
		Gate:         middleware.GateConfig{Mode: middleware.ModeRefresh, LoginRoute: "/login", ProtectedRoute: "/store"},
		Pages:        PagesConfig{StaticDir: dir},
		PublicAPIURL: "/api",
	}
	if withStore {
		cfg.ImageStore = stubStore{}
	}

	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	return srv, lastPath
}

func get(srv *HTTPServer, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := newRecorder()
	srv.ServeHTTP(w, req)
	return w.ResponseRecorder
}

// recorder adds CloseNotify, which ReverseProxy asserts through gin's writer.
type recorder struct {
	*httptest.ResponseRecorder
}

func (recorder) CloseNotify() <-chan bool { return make(chan bool) }

func newRecorder() recorder {
	return recorder{httptest.NewRecorder()}
}

var (
	accessCookie  = &http.Cookie{Name: session.AccessTokenCookie, Value: "a"}
	refreshCookie = &http.Cookie{Name: session.RefreshTokenCookie, Value: "r"}
)

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 8080})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newServer(t, false)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
	}

	w := get(srv, "/client-config")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/api", body.Data["backend_api_url"])

	w = get(srv, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "backoffice_http_requests_total")

	assert.NotEmpty(t, get(srv, "/health").Header().Get("X-Request-ID"))
}

func TestPageRedirects(t *testing.T) {
	srv, _ := newServer(t, false)

	w := get(srv, "/")
	assert.Equal(t, http.StatusPermanentRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = get(srv, "/store")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = get(srv, "/store", refreshCookie)
	assert.Equal(t, http.StatusPermanentRedirect, w.Code)
	assert.Equal(t, "/store/inventory", w.Header().Get("Location"))

	w = get(srv, "/store/orders")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)

	w = get(srv, "/login", refreshCookie)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/store", w.Header().Get("Location"))
}

func TestPagesServeBundle(t *testing.T) {
	srv, _ := newServer(t, false)

	w := get(srv, "/login")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard")

	w = get(srv, "/store/inventory", accessCookie, refreshCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard")

	w = get(srv, "/assets/app.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")

	assert.Equal(t, http.StatusNotFound, get(srv, "/nope.js").Code)
	assert.Equal(t, http.StatusNotFound, get(srv, "/../../etc/passwd").Code)
}

func TestDomainRoutes(t *testing.T) {
	srv, lastPath := newServer(t, false)

	assert.Equal(t, http.StatusUnauthorized, get(srv, "/v1/items").Code)

	w := get(srv, "/v1/items", accessCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/items", *lastPath)

	w = get(srv, "/api/orders?page_size=10", accessCookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/orders", *lastPath)
}

func TestUploadRouteOptional(t *testing.T) {
	without, _ := newServer(t, false)
	req := httptest.NewRequest(http.MethodPost, "/v1/uploads/images", strings.NewReader(""))
	w := httptest.NewRecorder()
	without.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	with, _ := newServer(t, true)
	req = httptest.NewRequest(http.MethodPost, "/v1/uploads/images", strings.NewReader(""))
	req.AddCookie(accessCookie)
	w = httptest.NewRecorder()
	with.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
