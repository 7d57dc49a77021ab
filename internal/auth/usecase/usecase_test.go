package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourpal-backoffice/internal/auth"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/querycache"
	"pourpal-backoffice/pkg/session"
)

type mockRepo struct {
	creds        auth.Credentials
	loginErr     error
	logoutCalls  int
	logoutErr    error
	profileCalls int
	registered   string
}

func (m *mockRepo) Login(ctx context.Context, creds auth.Credentials) (session.Tokens, error) {
	m.creds = creds
	if m.loginErr != nil {
		return session.Tokens{}, m.loginErr
	}
	return session.Tokens{AccessToken: "a", RefreshToken: "r"}, nil
}

func (m *mockRepo) Logout(ctx context.Context, sc model.Scope) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockRepo) Profile(ctx context.Context, sc model.Scope) (auth.Profile, error) {
	m.profileCalls++
	return auth.Profile{Email: "ada@pourpal.io"}, nil
}

func (m *mockRepo) RegisterAdmin(ctx context.Context, sc model.Scope, email string) error {
	m.registered = email
	return nil
}

func TestLoginTrimsCredentials(t *testing.T) {
	repo := &mockRepo{}
	out, err := New(repo, nil, log.NewNop()).Login(context.Background(), auth.Credentials{Email: " ada@pourpal.io ", Password: " pw "})
	require.NoError(t, err)
	assert.Equal(t, auth.Credentials{Email: "ada@pourpal.io", Password: "pw"}, repo.creds)
	assert.Equal(t, "a", out.Tokens.AccessToken)
}

func TestLoginFailure(t *testing.T) {
	repo := &mockRepo{loginErr: auth.ErrInvalidCredentials}
	_, err := New(repo, nil, log.NewNop()).Login(context.Background(), auth.Credentials{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogoutIsBestEffort(t *testing.T) {
	repo := &mockRepo{logoutErr: errors.New("backend down")}
	uc := New(repo, nil, log.NewNop())

	assert.NoError(t, uc.Logout(context.Background(), "tok"))
	assert.Equal(t, 1, repo.logoutCalls)

	assert.NoError(t, uc.Logout(context.Background(), ""))
	assert.Equal(t, 1, repo.logoutCalls, "no backend call without a session")
}

func TestProfileCachedUntilLogout(t *testing.T) {
	repo := &mockRepo{}
	uc := New(repo, querycache.New(4, time.Minute), log.NewNop())
	ctx := model.SetScopeToContext(context.Background(), model.Scope{AccessToken: "tok"})

	_, err := uc.Profile(ctx)
	require.NoError(t, err)
	_, err = uc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.profileCalls)

	require.NoError(t, uc.Logout(ctx, "tok"))
	_, err = uc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.profileCalls)
}

func TestRegisterAdmin(t *testing.T) {
	repo := &mockRepo{}
	uc := New(repo, nil, log.NewNop())

	assert.ErrorIs(t, uc.RegisterAdmin(context.Background(), "x@y.z"), auth.ErrUnauthenticated)

	ctx := model.SetScopeToContext(context.Background(), model.Scope{AccessToken: "tok"})
	require.NoError(t, uc.RegisterAdmin(ctx, " new@pourpal.io "))
	assert.Equal(t, "new@pourpal.io", repo.registered)
}
