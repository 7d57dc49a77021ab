package taxonomy

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, kind Kind) ([]Entry, error)
	Create(ctx context.Context, kind Kind, label string) error
	Update(ctx context.Context, kind Kind, id, label string) error
	Delete(ctx context.Context, kind Kind, id string) error

	ListCountries(ctx context.Context) ([]Country, error)
}
