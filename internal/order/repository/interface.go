package repository

import (
	"context"

	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/internal/order"
)

type ListOptions struct {
	PageSize   int
	PageNumber int
}

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opt ListOptions) (order.ListOutput, error)
}
