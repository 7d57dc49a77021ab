package usecase

import (
	"context"
	"strings"

	"pourpal-backoffice/internal/taxonomy"
	"pourpal-backoffice/pkg/querycache"
)

func (uc *implUseCase) List(ctx context.Context, kind taxonomy.Kind) ([]taxonomy.Entry, error) {
	sc, err := uc.scope(ctx)
	if err != nil {
		return nil, err
	}

	key := querycache.Key(kind.Resource, "", sc.AccessToken)
	entries, hit, err := querycache.Fetch(uc.cache, key, func() ([]taxonomy.Entry, error) {
		return uc.repo.List(ctx, sc, kind)
	})
	uc.observe(hit)
	if err != nil {
		uc.l.Errorf(ctx, "taxonomy.usecase.List %s: %v", kind.Resource, err)
		return nil, err
	}
	return entries, nil
}

func (uc *implUseCase) Create(ctx context.Context, kind taxonomy.Kind, label string) error {
	sc, err := uc.scope(ctx)
	if err != nil {
		return err
	}
	if err := uc.repo.Create(ctx, sc, kind, strings.TrimSpace(label)); err != nil {
		uc.l.Errorf(ctx, "taxonomy.usecase.Create %s: %v", kind.Resource, err)
		return err
	}
	uc.invalidate(ctx, kind)
	return nil
}

func (uc *implUseCase) Update(ctx context.Context, kind taxonomy.Kind, id, label string) error {
	sc, err := uc.scope(ctx)
	if err != nil {
		return err
	}
	if err := uc.repo.Update(ctx, sc, kind, id, strings.TrimSpace(label)); err != nil {
		uc.l.Errorf(ctx, "taxonomy.usecase.Update %s: %v", kind.Resource, err)
		return err
	}
	uc.invalidate(ctx, kind)
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, kind taxonomy.Kind, id string) error {
	sc, err := uc.scope(ctx)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, sc, kind, id); err != nil {
		uc.l.Errorf(ctx, "taxonomy.usecase.Delete %s: %v", kind.Resource, err)
		return err
	}
	uc.invalidate(ctx, kind)
	return nil
}

// ListCountries is cached like any list; countries never change through this service.
func (uc *implUseCase) ListCountries(ctx context.Context) ([]taxonomy.Country, error) {
	sc, err := uc.scope(ctx)
	if err != nil {
		return nil, err
	}

	key := querycache.Key(taxonomy.CountriesResource, "", sc.AccessToken)
	countries, hit, err := querycache.Fetch(uc.cache, key, func() ([]taxonomy.Country, error) {
		return uc.repo.ListCountries(ctx, sc)
	})
	uc.observe(hit)
	if err != nil {
		uc.l.Errorf(ctx, "taxonomy.usecase.ListCountries: %v", err)
		return nil, err
	}
	return countries, nil
}
