package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/order"
	pkgErrors "pourpal-backoffice/pkg/errors"
	"pourpal-backoffice/pkg/paging"
	"pourpal-backoffice/pkg/response"
	"pourpal-backoffice/pkg/validation"
)

type listReq struct {
	PageSize   int `form:"page_size"`
	PageNumber int `form:"page_number"`
}

type deliveryResp struct {
	RecipientName          string `json:"recipient_name"`
	RecipientPhone         string `json:"recipient_phone"`
	RecipientCity          string `json:"recipient_city"`
	RecipientStreetAddress string `json:"recipient_street_address"`
}

type lineResp struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type priceResp struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

type orderResp struct {
	OrderID             string       `json:"order_id"`
	OrderNumber         string       `json:"order_number"`
	UserID              string       `json:"user_id"`
	Status              string       `json:"status"`
	DeliveryInformation deliveryResp `json:"delivery_information"`
	OrderItems          []lineResp   `json:"order_items"`
	TotalPrice          priceResp    `json:"total_price"`
	CreatedAt           string       `json:"created_at"`
}

type listResp struct {
	Orders []orderResp   `json:"orders"`
	Paging paging.Paging `json:"paging"`
}

func newListResp(out order.ListOutput) listResp {
	orders := make([]orderResp, len(out.Orders))
	for i, o := range out.Orders {
		lines := make([]lineResp, len(o.Lines))
		for j, l := range o.Lines {
			lines[j] = lineResp{ItemID: l.ItemID, Quantity: l.Quantity}
		}
		orders[i] = orderResp{
			OrderID:     o.ID,
			OrderNumber: o.Number,
			UserID:      o.UserID,
			Status:      o.Status,
			DeliveryInformation: deliveryResp{
				RecipientName:          o.DeliveryInformation.RecipientName,
				RecipientPhone:         o.DeliveryInformation.RecipientPhone,
				RecipientCity:          o.DeliveryInformation.RecipientCity,
				RecipientStreetAddress: o.DeliveryInformation.RecipientStreetAddress,
			},
			OrderItems: lines,
			TotalPrice: priceResp{Currency: o.TotalPrice.Currency, Amount: o.TotalPrice.Amount},
			CreatedAt:  o.CreatedAt,
		}
	}
	return listResp{Orders: orders, Paging: out.Paging}
}

func (h *handler) mapError(err error) error {
	if errors.Is(err, order.ErrUnauthenticated) {
		return pkgErrors.ErrUnauthorized
	}
	return pkgErrors.ErrBadGateway
}

// List godoc
// @Summary     List orders
// @Tags        Orders
// @Produce     json
// @Param       page_size   query int false "Page size (10, 20, 30, 40, 50)"
// @Param       page_number query int false "Page number, starting at 1"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /v1/orders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, validation.BindError(err))
		return
	}

	out, err := h.uc.List(ctx, order.ListInput{PageSize: req.PageSize, PageNumber: req.PageNumber})
	if err != nil {
		h.l.Errorf(ctx, "order.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(out))
}
