package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourpal-backoffice/internal/auth"
	"pourpal-backoffice/internal/middleware"
	"pourpal-backoffice/internal/proxy"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/ratelimit"
	"pourpal-backoffice/pkg/session"
	"pourpal-backoffice/pkg/validation"
)

type fakeUseCase struct {
	creds       auth.Credentials
	tokens      session.Tokens
	loginErr    error
	loggedOut   string
	registerErr error
	registered  string
}

func (f *fakeUseCase) Login(ctx context.Context, creds auth.Credentials) (auth.LoginOutput, error) {
	f.creds = creds
	return auth.LoginOutput{Tokens: f.tokens}, f.loginErr
}

func (f *fakeUseCase) Logout(ctx context.Context, accessToken string) error {
	f.loggedOut = accessToken
	return nil
}

func (f *fakeUseCase) Profile(ctx context.Context) (auth.Profile, error) {
	return auth.Profile{Email: "ada@pourpal.io", Role: "admin", IsActive: true}, nil
}

func (f *fakeUseCase) RegisterAdmin(ctx context.Context, email string) error {
	f.registered = email
	return f.registerErr
}

func signed(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func newRouter(t *testing.T, uc auth.UseCase, limiter *ratelimit.Limiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterWithGin())

	p, err := proxy.New(log.NewNop(), proxy.Config{Target: "http://127.0.0.1:1", MountPath: "/api", Transport: http.DefaultTransport})
	require.NoError(t, err)

	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.GateConfig{}, limiter)
	RegisterRoutes(r, r.Group("/v1"), New(log.NewNop(), uc, session.DefaultOptions()), mw, p)
	proxy.RegisterRoutes(r, p)
	return r
}

func do(r *gin.Engine, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestLoginSetsCookies(t *testing.T) {
	uc := &fakeUseCase{tokens: session.Tokens{AccessToken: signed(t), RefreshToken: signed(t)}}
	r := newRouter(t, uc, nil)

	w := do(r, http.MethodPost, "/auth/login", `{"email":"  ada@pourpal.io ","password":" pw "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":200}`, w.Body.String())
	assert.Equal(t, auth.Credentials{Email: "ada@pourpal.io", Password: "pw"}, uc.creds)

	access := cookieByName(w, session.AccessTokenCookie)
	require.NotNil(t, access)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.NotNil(t, cookieByName(w, session.RefreshTokenCookie))
}

func TestLoginThroughProxyMount(t *testing.T) {
	uc := &fakeUseCase{tokens: session.Tokens{AccessToken: signed(t)}}
	r := newRouter(t, uc, nil)

	w := do(r, http.MethodPost, "/api/auth/login", `{"email":"ada@pourpal.io","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, cookieByName(w, session.AccessTokenCookie))
	assert.Nil(t, cookieByName(w, session.RefreshTokenCookie))
}

func TestLoginValidation(t *testing.T) {
	r := newRouter(t, &fakeUseCase{}, nil)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "blank email", body: `{"email":"   ","password":"pw"}`, field: "email"},
		{name: "bad email", body: `{"email":"nope","password":"pw"}`, field: "email"},
		{name: "blank password", body: `{"email":"ada@pourpal.io","password":"  "}`, field: "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"`+tt.field+`"`)
		})
	}

	w := do(r, http.MethodPost, "/auth/login", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginFailures(t *testing.T) {
	w := do(newRouter(t, &fakeUseCase{loginErr: auth.ErrInvalidCredentials}, nil), http.MethodPost, "/auth/login", `{"email":"ada@pourpal.io","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	assert.Nil(t, cookieByName(w, session.AccessTokenCookie))

	w = do(newRouter(t, &fakeUseCase{loginErr: errors.New("dial tcp: refused")}, nil), http.MethodPost, "/auth/login", `{"email":"ada@pourpal.io","password":"pw"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// a token that is not a JWT cannot produce a cookie
	w = do(newRouter(t, &fakeUseCase{tokens: session.Tokens{AccessToken: "opaque"}}, nil), http.MethodPost, "/auth/login", `{"email":"ada@pourpal.io","password":"pw"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestLoginThrottled(t *testing.T) {
	uc := &fakeUseCase{tokens: session.Tokens{AccessToken: signed(t)}}
	r := newRouter(t, uc, ratelimit.New(1))

	body := `{"email":"ada@pourpal.io","password":"pw"}`
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/auth/login", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/auth/login", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/auth/login", body).Code)
}

func TestLogoutExpiresCookies(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(t, uc, nil)

	w := do(r, http.MethodPost, "/auth/logout", "", &http.Cookie{Name: session.AccessTokenCookie, Value: "tok"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":200}`, w.Body.String())
	assert.Equal(t, "tok", uc.loggedOut)

	for _, name := range []string{session.AccessTokenCookie, session.RefreshTokenCookie} {
		ck := cookieByName(w, name)
		require.NotNil(t, ck, name)
		assert.Empty(t, ck.Value)
		assert.Less(t, ck.MaxAge, 0)
	}

	w = do(r, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, uc.loggedOut)
}

func TestProfile(t *testing.T) {
	r := newRouter(t, &fakeUseCase{}, nil)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/v1/auth/profile", "").Code)

	w := do(r, http.MethodGet, "/v1/auth/profile", "", &http.Cookie{Name: session.AccessTokenCookie, Value: "tok"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"ada@pourpal.io"`)
	assert.Contains(t, w.Body.String(), `"is_active":true`)
}

func TestRegisterAdmin(t *testing.T) {
	tok := &http.Cookie{Name: session.AccessTokenCookie, Value: "tok"}

	uc := &fakeUseCase{}
	w := do(newRouter(t, uc, nil), http.MethodPost, "/v1/auth/register/admin", `{"email":"  new@pourpal.io "}`, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new@pourpal.io", uc.registered)

	w = do(newRouter(t, &fakeUseCase{registerErr: auth.ErrDuplicate}, nil), http.MethodPost, "/v1/auth/register/admin", `{"email":"new@pourpal.io"}`, tok)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(newRouter(t, &fakeUseCase{}, nil), http.MethodPost, "/v1/auth/register/admin", `{"email":"x"}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(newRouter(t, &fakeUseCase{}, nil), http.MethodPost, "/v1/auth/register/admin", `{"email":"   "}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
