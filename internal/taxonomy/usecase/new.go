package usecase

import (
	"context"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/internal/taxonomy"
	"pourpal-backoffice/internal/taxonomy/repository"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/metrics"
	"pourpal-backoffice/pkg/querycache"
)

type implUseCase struct {
	repo  repository.Repository
	cache *querycache.Cache
	l     log.Logger
}

// New creates the taxonomy UseCase. cache may be nil.
func New(repo repository.Repository, cache *querycache.Cache, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, cache: cache, l: l}
}

func (uc *implUseCase) scope(ctx context.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok || sc.AccessToken == "" {
		return model.Scope{}, taxonomy.ErrUnauthenticated
	}
	return sc, nil
}

// invalidate drops the kind's lists and every item query, since items embed brand and type labels.
func (uc *implUseCase) invalidate(ctx context.Context, kind taxonomy.Kind) {
	if uc.cache == nil {
		return
	}
	n := uc.cache.Invalidate(kind.Resource) + uc.cache.Invalidate(item.Resource)
	uc.l.Debugf(ctx, "taxonomy.usecase: invalidated %d cached queries after %s change", n, kind.Resource)
}

func (uc *implUseCase) observe(hit bool) {
	if uc.cache != nil {
		metrics.ObserveCache(hit)
	}
}
