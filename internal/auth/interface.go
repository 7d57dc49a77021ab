package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, creds Credentials) (LoginOutput, error)
	Logout(ctx context.Context, accessToken string) error
	Profile(ctx context.Context) (Profile, error)
	RegisterAdmin(ctx context.Context, email string) error
}
