package repository

import "pourpal-backoffice/internal/item"

// ListOptions are sent as query parameters. Nil fields are omitted.
type ListOptions struct {
	Search     *string
	PageSize   *int
	PageNumber *int
}

// SaveOptions is the body of a create or update call.
type SaveOptions struct {
	Input item.ItemInput
}
