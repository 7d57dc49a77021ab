package repository

import (
	"context"

	"pourpal-backoffice/internal/auth"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/session"
)

//go:generate mockery --name Repository
type Repository interface {
	Login(ctx context.Context, creds auth.Credentials) (session.Tokens, error)
	Logout(ctx context.Context, sc model.Scope) error
	Profile(ctx context.Context, sc model.Scope) (auth.Profile, error)
	RegisterAdmin(ctx context.Context, sc model.Scope, email string) error
}
