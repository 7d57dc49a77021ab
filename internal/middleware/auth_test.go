package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/ratelimit"
	"pourpal-backoffice/pkg/session"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), GateConfig{}, nil)
	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, ok := model.GetScopeFromContext(c.Request.Context())
		if !ok {
			c.String(http.StatusInternalServerError, "no scope")
			return
		}
		c.String(http.StatusOK, sc.AccessToken)
	})
	return r
}

func TestAuth(t *testing.T) {
	r := newAuthRouter()

	t.Run("no token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"error_code":401`)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "cookie-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cookie-token", w.Body.String())
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "bearer header-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "header-token", w.Body.String())
	})
}

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), GateConfig{}, ratelimit.New(1))
	r := gin.New()
	r.POST("/auth/login", mw.LoginRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), GateConfig{}, nil)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, log.RequestID(c.Request.Context())) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Body.String(), 36)
}
