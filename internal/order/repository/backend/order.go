package backend

import (
	"context"

	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/internal/order"
	"pourpal-backoffice/internal/order/repository"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/paging"
	"pourpal-backoffice/pkg/restclient"
)

type implRepository struct {
	client *restclient.Client
	l      log.Logger
}

var _ repository.Repository = &implRepository{}

func New(client *restclient.Client, l log.Logger) *implRepository {
	return &implRepository{client: client, l: l}
}

type wireOrder struct {
	OrderID             string `json:"order_id"`
	OrderNumber         string `json:"order_number"`
	UserID              string `json:"user_id"`
	Status              string `json:"status"`
	DeliveryInformation struct {
		RecipientName          string `json:"recipient_name"`
		RecipientPhone         string `json:"recipient_phone"`
		RecipientCity          string `json:"recipient_city"`
		RecipientStreetAddress string `json:"recipient_street_address"`
	} `json:"delivery_information"`
	OrderItems []struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
	} `json:"order_items"`
	TotalPrice struct {
		Currency string        `json:"currency"`
		Amount   model.Decimal `json:"amount"`
	} `json:"total_price"`
	CreatedAt model.Date `json:"created_at"`
}

type wireList struct {
	Orders []wireOrder   `json:"orders"`
	Paging paging.Paging `json:"paging"`
}

func toOrder(w wireOrder) order.Order {
	lines := make([]order.Line, len(w.OrderItems))
	for i, l := range w.OrderItems {
		lines[i] = order.Line{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	return order.Order{
		ID:     w.OrderID,
		Number: w.OrderNumber,
		UserID: w.UserID,
		Status: w.Status,
		DeliveryInformation: order.DeliveryInformation{
			RecipientName:          w.DeliveryInformation.RecipientName,
			RecipientPhone:         w.DeliveryInformation.RecipientPhone,
			RecipientCity:          w.DeliveryInformation.RecipientCity,
			RecipientStreetAddress: w.DeliveryInformation.RecipientStreetAddress,
		},
		Lines:      lines,
		TotalPrice: order.Price{Currency: w.TotalPrice.Currency, Amount: w.TotalPrice.Amount.Value},
		CreatedAt:  w.CreatedAt.Value,
	}
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opt repository.ListOptions) (order.ListOutput, error) {
	var res wireList
	err := r.client.WithBearer(sc.AccessToken).Get(ctx, "/orders", restclient.RequestOptions{
		Params: restclient.Params{
			"page_size":   opt.PageSize,
			"page_number": opt.PageNumber,
		},
	}, &res)
	if err != nil {
		r.l.Errorf(ctx, "order.repository.List: %v", err)
		return order.ListOutput{}, restclient.Translate(err, map[restclient.Kind]error{
			restclient.KindUnauthorized: order.ErrUnauthenticated,
			restclient.KindRejected:     order.ErrRejected,
		})
	}

	orders := make([]order.Order, len(res.Orders))
	for i, w := range res.Orders {
		orders[i] = toOrder(w)
	}
	return order.ListOutput{Orders: orders, Paging: res.Paging}, nil
}
