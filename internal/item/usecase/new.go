package usecase

import (
	"pourpal-backoffice/internal/item/repository"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/querycache"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo  repository.Repository
	cache *querycache.Cache
	l     log.Logger
}

// New creates the item UseCase. cache may be nil to disable read caching.
func New(repo repository.Repository, cache *querycache.Cache, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
