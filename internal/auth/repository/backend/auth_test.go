package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourpal-backoffice/internal/auth"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/restclient"
)

func newTestRepo(t *testing.T, h http.HandlerFunc) *implRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(restclient.New(restclient.Options{BaseURL: srv.URL, HTTPClient: srv.Client()}), log.NewNop())
}

func TestLogin(t *testing.T) {
	var body map[string]string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"access_token":"a.b.c","refresh_token":"d.e.f"}`)
	})

	tokens, err := repo.Login(context.Background(), auth.Credentials{Email: "ada@pourpal.io", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tokens.AccessToken)
	assert.Equal(t, "d.e.f", tokens.RefreshToken)
	assert.Equal(t, map[string]string{"email": "ada@pourpal.io", "password": "secret"}, body)
}

func TestLoginRefused(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound} {
		repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		_, err := repo.Login(context.Background(), auth.Credentials{})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "status %d", status)
	}
}

func TestLoginServerError(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := repo.Login(context.Background(), auth.Credentials{})
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, restclient.KindServer, restclient.Classify(err))
}

func TestLoginWithoutToken(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})
	_, err := repo.Login(context.Background(), auth.Credentials{})
	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestProfile(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"email":"ada@pourpal.io","role":"admin","full_name":"Ada","is_active":true,"created_at":{"$date":"2024-01-01T00:00:00Z"},"updated_at":"2024-02-01T00:00:00Z"}`)
	})

	p, err := repo.Profile(context.Background(), model.Scope{AccessToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, auth.Profile{
		Email:     "ada@pourpal.io",
		Role:      "admin",
		FullName:  "Ada",
		IsActive:  true,
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-02-01T00:00:00Z",
	}, p)
}

func TestRegisterAdminDuplicate(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register/admin", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
	})
	err := repo.RegisterAdmin(context.Background(), model.Scope{AccessToken: "tok"}, "ada@pourpal.io")
	assert.ErrorIs(t, err, auth.ErrDuplicate)
}
