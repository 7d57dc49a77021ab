package usecase

import (
	"context"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/internal/item/repository"
	"pourpal-backoffice/pkg/paging"
)

// Create adds an item and invalidates every cached item query.
func (uc *implUseCase) Create(ctx context.Context, input item.ItemInput) error {
	sc, err := uc.scope(ctx)
	if err != nil {
		return err
	}
	if err := uc.repo.Create(ctx, sc, repository.SaveOptions{Input: input}); err != nil {
		uc.l.Errorf(ctx, "item.usecase.Create: %v", err)
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// Update replaces an item and invalidates every cached item query.
func (uc *implUseCase) Update(ctx context.Context, id string, input item.ItemInput) error {
	sc, err := uc.scope(ctx)
	if err != nil {
		return err
	}
	if err := uc.repo.Update(ctx, sc, id, repository.SaveOptions{Input: input}); err != nil {
		uc.l.Errorf(ctx, "item.usecase.Update: %v", err)
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// Delete removes an item and tells the caller which page to show next.
func (uc *implUseCase) Delete(ctx context.Context, input item.DeleteInput) (item.DeleteOutput, error) {
	sc, err := uc.scope(ctx)
	if err != nil {
		return item.DeleteOutput{}, err
	}

	pageNumber := paging.NormalizeNumber(input.List.PageNumber)
	before, listErr := uc.List(ctx, input.List)
	if listErr != nil {
		uc.l.Warnf(ctx, "item.usecase.Delete: page %d unavailable, keeping it: %v", pageNumber, listErr)
	}

	if err := uc.repo.Delete(ctx, sc, input.ID); err != nil {
		uc.l.Errorf(ctx, "item.usecase.Delete: %v", err)
		return item.DeleteOutput{}, err
	}
	uc.invalidate(ctx)

	next := pageNumber
	if listErr == nil {
		next = paging.PageAfterDelete(pageNumber, before.Paging)
	}
	return item.DeleteOutput{PageNumber: next}, nil
}
