package repository

import (
	"context"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opt ListOptions) (item.ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (item.Item, error)
	Create(ctx context.Context, sc model.Scope, opt SaveOptions) error
	Update(ctx context.Context, sc model.Scope, id string, opt SaveOptions) error
	Delete(ctx context.Context, sc model.Scope, id string) error
}
