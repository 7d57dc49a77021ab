package order

import "pourpal-backoffice/pkg/paging"

const Resource = "orders"

type DeliveryInformation struct {
	RecipientName          string
	RecipientPhone         string
	RecipientCity          string
	RecipientStreetAddress string
}

type Line struct {
	ItemID   string
	Quantity int
}

type Price struct {
	Currency string
	Amount   string
}

// Order is read-only in the backoffice.
type Order struct {
	ID                  string
	Number              string
	UserID              string
	Status              string
	DeliveryInformation DeliveryInformation
	Lines               []Line
	TotalPrice          Price
	CreatedAt           string
}

type ListInput struct {
	PageSize   int
	PageNumber int
}

type ListOutput struct {
	Orders []Order
	Paging paging.Paging
}
