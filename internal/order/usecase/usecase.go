package usecase

import (
	"context"
	"fmt"

	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/internal/order"
	"pourpal-backoffice/internal/order/repository"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/metrics"
	"pourpal-backoffice/pkg/paging"
	"pourpal-backoffice/pkg/querycache"
	"pourpal-backoffice/pkg/restclient"
)

type implUseCase struct {
	repo  repository.Repository
	cache *querycache.Cache
	l     log.Logger
}

func New(repo repository.Repository, cache *querycache.Cache, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, cache: cache, l: l}
}

// List returns one page of orders.
func (uc *implUseCase) List(ctx context.Context, input order.ListInput) (order.ListOutput, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok || sc.AccessToken == "" {
		return order.ListOutput{}, order.ErrUnauthenticated
	}

	opt := repository.ListOptions{
		PageSize:   paging.NormalizeSize(input.PageSize),
		PageNumber: paging.NormalizeNumber(input.PageNumber),
	}
	params := restclient.Params{"page_size": opt.PageSize, "page_number": opt.PageNumber}.Encode()

	out, hit, err := querycache.Fetch(uc.cache, querycache.Key(order.Resource, params, sc.AccessToken), func() (order.ListOutput, error) {
		out, err := uc.repo.List(ctx, sc, opt)
		if err != nil {
			return order.ListOutput{}, err
		}
		if err := out.Paging.Validate(); err != nil {
			return order.ListOutput{}, fmt.Errorf("%w: %v", order.ErrInvalidPaging, err)
		}
		return out, nil
	})
	if uc.cache != nil {
		metrics.ObserveCache(hit)
	}
	if err != nil {
		uc.l.Errorf(ctx, "order.usecase.List: %v", err)
		return order.ListOutput{}, err
	}
	return out, nil
}
