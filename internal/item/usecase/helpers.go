package usecase

import (
	"context"
	"strings"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/internal/item/repository"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/metrics"
	"pourpal-backoffice/pkg/paging"
	"pourpal-backoffice/pkg/restclient"
)

func (uc *implUseCase) scope(ctx context.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok || sc.AccessToken == "" {
		return model.Scope{}, item.ErrUnauthenticated
	}
	return sc, nil
}

// listOptions normalizes paging and drops an empty search.
func (uc *implUseCase) listOptions(input item.ListInput) repository.ListOptions {
	size := paging.NormalizeSize(input.PageSize)
	number := paging.NormalizeNumber(input.PageNumber)
	opt := repository.ListOptions{PageSize: &size, PageNumber: &number}
	if search := strings.TrimSpace(input.Search); search != "" {
		opt.Search = &search
	}
	return opt
}

func (uc *implUseCase) listKey(opt repository.ListOptions) string {
	return restclient.Params{
		"search":      opt.Search,
		"page_size":   opt.PageSize,
		"page_number": opt.PageNumber,
	}.Encode()
}

func (uc *implUseCase) observe(hit bool) {
	if uc.cache != nil {
		metrics.ObserveCache(hit)
	}
}

func (uc *implUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	n := uc.cache.Invalidate(item.Resource)
	uc.l.Debugf(ctx, "item.usecase: invalidated %d cached queries", n)
}
