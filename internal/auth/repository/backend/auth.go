package backend

import (
	"context"

	"pourpal-backoffice/internal/auth"
	"pourpal-backoffice/internal/auth/repository"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/restclient"
	"pourpal-backoffice/pkg/session"
)

type implRepository struct {
	client *restclient.Client
	l      log.Logger
}

var _ repository.Repository = &implRepository{}

func New(client *restclient.Client, l log.Logger) *implRepository {
	return &implRepository{client: client, l: l}
}

// Any 4xx on login means the credentials were refused.
var loginKinds = map[restclient.Kind]error{
	restclient.KindUnauthorized: auth.ErrInvalidCredentials,
	restclient.KindNotFound:     auth.ErrInvalidCredentials,
	restclient.KindConflict:     auth.ErrInvalidCredentials,
	restclient.KindRejected:     auth.ErrInvalidCredentials,
}

var errorKinds = map[restclient.Kind]error{
	restclient.KindUnauthorized: auth.ErrUnauthenticated,
	restclient.KindConflict:     auth.ErrDuplicate,
	restclient.KindRejected:     auth.ErrRejected,
}

type authenticationResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r *implRepository) Login(ctx context.Context, creds auth.Credentials) (session.Tokens, error) {
	var res authenticationResponse
	err := r.client.Post(ctx, "/auth/login", restclient.RequestOptions{
		Body: map[string]string{"email": creds.Email, "password": creds.Password},
	}, &res)
	if err != nil {
		r.l.Warnf(ctx, "auth.repository.Login: %v", err)
		return session.Tokens{}, restclient.Translate(err, loginKinds)
	}
	if res.AccessToken == "" {
		return session.Tokens{}, auth.ErrMissingToken
	}
	return session.Tokens{AccessToken: res.AccessToken, RefreshToken: res.RefreshToken}, nil
}

func (r *implRepository) Logout(ctx context.Context, sc model.Scope) error {
	if err := r.client.WithBearer(sc.AccessToken).Post(ctx, "/auth/logout", restclient.RequestOptions{}, nil); err != nil {
		return restclient.Translate(err, errorKinds)
	}
	return nil
}

type profileResponse struct {
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt model.Date `json:"created_at"`
	UpdatedAt model.Date `json:"updated_at"`
}

func (r *implRepository) Profile(ctx context.Context, sc model.Scope) (auth.Profile, error) {
	var res profileResponse
	if err := r.client.WithBearer(sc.AccessToken).Get(ctx, "/auth/profile", restclient.RequestOptions{}, &res); err != nil {
		r.l.Errorf(ctx, "auth.repository.Profile: %v", err)
		return auth.Profile{}, restclient.Translate(err, errorKinds)
	}
	return auth.Profile{
		Email:     res.Email,
		Role:      res.Role,
		FullName:  res.FullName,
		IsActive:  res.IsActive,
		CreatedAt: res.CreatedAt.Value,
		UpdatedAt: res.UpdatedAt.Value,
	}, nil
}

func (r *implRepository) RegisterAdmin(ctx context.Context, sc model.Scope, email string) error {
	err := r.client.WithBearer(sc.AccessToken).Post(ctx, "/auth/register/admin", restclient.RequestOptions{
		Body: map[string]string{"email": email},
	}, nil)
	if err != nil {
		r.l.Errorf(ctx, "auth.repository.RegisterAdmin: %v", err)
		return restclient.Translate(err, errorKinds)
	}
	return nil
}
