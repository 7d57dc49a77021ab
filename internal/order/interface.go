package order

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
