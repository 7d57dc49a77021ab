package usecase

import (
	"context"
	"strings"

	"pourpal-backoffice/internal/auth"
	"pourpal-backoffice/internal/auth/repository"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/metrics"
	"pourpal-backoffice/pkg/querycache"
)

type implUseCase struct {
	repo  repository.Repository
	cache *querycache.Cache
	l     log.Logger
}

func New(repo repository.Repository, cache *querycache.Cache, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, cache: cache, l: l}
}

// Login exchanges credentials for the backend token pair.
func (uc *implUseCase) Login(ctx context.Context, creds auth.Credentials) (auth.LoginOutput, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	creds.Password = strings.TrimSpace(creds.Password)

	tokens, err := uc.repo.Login(ctx, creds)
	if err != nil {
		return auth.LoginOutput{}, err
	}
	uc.l.Infof(ctx, "auth.usecase.Login: %s signed in", creds.Email)
	return auth.LoginOutput{Tokens: tokens}, nil
}

// Logout tells the backend the session ended. Failures are logged only:
// the caller drops the cookies either way.
func (uc *implUseCase) Logout(ctx context.Context, accessToken string) error {
	if uc.cache != nil {
		uc.cache.Invalidate(auth.Resource)
	}
	if accessToken == "" {
		return nil
	}
	if err := uc.repo.Logout(ctx, model.Scope{AccessToken: accessToken}); err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Logout: %v", err)
	}
	return nil
}

func (uc *implUseCase) Profile(ctx context.Context) (auth.Profile, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok || sc.AccessToken == "" {
		return auth.Profile{}, auth.ErrUnauthenticated
	}

	p, hit, err := querycache.Fetch(uc.cache, querycache.Key(auth.Resource, "profile", sc.AccessToken), func() (auth.Profile, error) {
		return uc.repo.Profile(ctx, sc)
	})
	if uc.cache != nil {
		metrics.ObserveCache(hit)
	}
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Profile: %v", err)
		return auth.Profile{}, err
	}
	return p, nil
}

func (uc *implUseCase) RegisterAdmin(ctx context.Context, email string) error {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok || sc.AccessToken == "" {
		return auth.ErrUnauthenticated
	}
	if err := uc.repo.RegisterAdmin(ctx, sc, strings.TrimSpace(email)); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.RegisterAdmin: %v", err)
		return err
	}
	return nil
}
