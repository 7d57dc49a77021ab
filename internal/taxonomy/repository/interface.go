package repository

import (
	"context"

	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/internal/taxonomy"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, kind taxonomy.Kind) ([]taxonomy.Entry, error)
	Create(ctx context.Context, sc model.Scope, kind taxonomy.Kind, label string) error
	Update(ctx context.Context, sc model.Scope, kind taxonomy.Kind, id, label string) error
	Delete(ctx context.Context, sc model.Scope, kind taxonomy.Kind, id string) error

	ListCountries(ctx context.Context, sc model.Scope) ([]taxonomy.Country, error)
}
