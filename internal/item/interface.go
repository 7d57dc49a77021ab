package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, input ItemInput) error
	Update(ctx context.Context, id string, input ItemInput) error
	Delete(ctx context.Context, input DeleteInput) (DeleteOutput, error)
}
