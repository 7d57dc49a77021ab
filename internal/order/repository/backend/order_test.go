package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/internal/order"
	"pourpal-backoffice/internal/order/repository"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/restclient"
)

func TestList(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = io.WriteString(w, `{
			"orders": [{
				"order_id": "o-1", "order_number": "PP-0001", "user_id": "u-1", "status": "shipped",
				"delivery_information": {"recipient_name": "Ada", "recipient_phone": "+3531", "recipient_city": "Dublin", "recipient_street_address": "1 Main St"},
				"order_items": [{"item_id": "it-1", "quantity": 2}],
				"total_price": {"currency": "€", "amount": {"$numberDecimal": "25.00"}},
				"created_at": {"$date": "2024-05-01T10:00:00.000Z"}
			}],
			"paging": {"count": 1, "page_size": 10, "page_number": 1, "total_count": 1, "total_pages": 1, "first_page": true, "last_page": true}
		}`)
	}))
	defer srv.Close()

	repo := New(restclient.New(restclient.Options{BaseURL: srv.URL, HTTPClient: srv.Client()}), log.NewNop())
	out, err := repo.List(context.Background(), model.Scope{AccessToken: "tok"}, repository.ListOptions{PageSize: 10, PageNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, "page_number=1&page_size=10", query)
	require.Len(t, out.Orders, 1)

	o := out.Orders[0]
	assert.Equal(t, "PP-0001", o.Number)
	assert.Equal(t, "Dublin", o.DeliveryInformation.RecipientCity)
	assert.Equal(t, []order.Line{{ItemID: "it-1", Quantity: 2}}, o.Lines)
	assert.Equal(t, order.Price{Currency: "€", Amount: "25.00"}, o.TotalPrice)
	assert.Equal(t, "2024-05-01T10:00:00.000Z", o.CreatedAt)
}

func TestListUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	repo := New(restclient.New(restclient.Options{BaseURL: srv.URL, HTTPClient: srv.Client()}), log.NewNop())
	_, err := repo.List(context.Background(), model.Scope{}, repository.ListOptions{PageSize: 10, PageNumber: 1})
	assert.ErrorIs(t, err, order.ErrUnauthenticated)
}
