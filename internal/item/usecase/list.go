package usecase

import (
	"context"
	"fmt"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/pkg/querycache"
)

// List returns one page of items. Responses with an inconsistent paging
// envelope are rejected and never cached.
func (uc *implUseCase) List(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	sc, err := uc.scope(ctx)
	if err != nil {
		return item.ListOutput{}, err
	}

	opt := uc.listOptions(input)
	key := querycache.Key(item.Resource, uc.listKey(opt), sc.AccessToken)

	out, hit, err := querycache.Fetch(uc.cache, key, func() (item.ListOutput, error) {
		out, err := uc.repo.List(ctx, sc, opt)
		if err != nil {
			return item.ListOutput{}, err
		}
		if err := out.Paging.Validate(); err != nil {
			return item.ListOutput{}, fmt.Errorf("%w: %v", item.ErrInvalidPaging, err)
		}
		return out, nil
	})
	uc.observe(hit)
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.List: %v", err)
		return item.ListOutput{}, err
	}
	return out, nil
}

// Detail returns a single item.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.Item, error) {
	sc, err := uc.scope(ctx)
	if err != nil {
		return item.Item{}, err
	}

	key := querycache.Key(item.Resource, "id="+id, sc.AccessToken)
	it, hit, err := querycache.Fetch(uc.cache, key, func() (item.Item, error) {
		return uc.repo.Detail(ctx, sc, id)
	})
	uc.observe(hit)
	if err != nil {
		uc.l.Errorf(ctx, "item.usecase.Detail: %v", err)
		return item.Item{}, err
	}
	return it, nil
}
