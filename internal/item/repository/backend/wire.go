package backend

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/paging"
)

// wireItem is the item record as the backend stores it.
type wireItem struct {
	MongoID     string `json:"_id"`
	ItemID      string `json:"item_id"`
	SKU         string `json:"sku"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Quantity    int    `json:"quantity"`

	Type struct {
		TypeID string `json:"type_id"`
		Type   string `json:"type"`
	} `json:"type"`
	Brand struct {
		BrandID string `json:"brand_id"`
		Brand   string `json:"brand"`
	} `json:"brand"`
	OriginCountry struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"origin_country"`

	Price         *wireQuantity `json:"price"`
	Volume        *wireQuantity `json:"volume"`
	AlcoholVolume *wireQuantity `json:"alcohol_volume"`

	AddedAt   model.Date `json:"added_at"`
	UpdatedAt model.Date `json:"updated_at"`
}

// wireQuantity covers price, volume and alcohol volume: an amount wrapper
// plus either a currency or a unit.
type wireQuantity struct {
	Amount   model.Decimal `json:"amount"`
	Currency string        `json:"currency"`
	Unit     string        `json:"unit"`
}

type wireList struct {
	Items  []wireItem    `json:"items"`
	Paging paging.Paging `json:"paging"`
}

func amountOf(field string, q *wireQuantity) (string, error) {
	if q == nil || !q.Amount.Valid {
		return "", fmt.Errorf("%w: %s amount is missing", item.ErrMalformedRecord, field)
	}
	if _, err := decimal.NewFromString(q.Amount.Value); err != nil {
		return "", fmt.Errorf("%w: %s amount %q is not a decimal", item.ErrMalformedRecord, field, q.Amount.Value)
	}
	// The backend's text is kept so "12.50" keeps its scale.
	return q.Amount.Value, nil
}

// toItem flattens one backend record.
func toItem(w wireItem) (item.Item, error) {
	price, err := amountOf("price", w.Price)
	if err != nil {
		return item.Item{}, err
	}
	volume, err := amountOf("volume", w.Volume)
	if err != nil {
		return item.Item{}, err
	}
	alcohol, err := amountOf("alcohol_volume", w.AlcoholVolume)
	if err != nil {
		return item.Item{}, err
	}

	id := w.ItemID
	if id == "" {
		id = w.MongoID
	}

	return item.Item{
		ID:                id,
		SKU:               w.SKU,
		Title:             w.Title,
		TypeID:            w.Type.TypeID,
		TypeName:          w.Type.Type,
		BrandID:           w.Brand.BrandID,
		BrandName:         w.Brand.Brand,
		OriginCountryCode: w.OriginCountry.Code,
		OriginCountryName: w.OriginCountry.Name,
		Price:             item.Price{Currency: w.Price.Currency, Amount: price},
		Volume:            item.Volume{Unit: w.Volume.Unit, Amount: volume},
		AlcoholVolume:     item.AlcoholVolume{Unit: w.AlcoholVolume.Unit, Amount: alcohol},
		Quantity:          w.Quantity,
		ImageURL:          w.ImageURL,
		Description:       w.Description,
		AddedAt:           w.AddedAt.Value,
		UpdatedAt:         w.UpdatedAt.Value,
	}, nil
}

func toItems(ws []wireItem) ([]item.Item, error) {
	items := make([]item.Item, 0, len(ws))
	for i, w := range ws {
		it, err := toItem(w)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// decodeDetail accepts both {"item": {...}} and a bare record.
func decodeDetail(raw json.RawMessage) (wireItem, error) {
	var wrapped struct {
		Item *wireItem `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return wireItem{}, fmt.Errorf("%w: %v", item.ErrMalformedRecord, err)
	}
	if wrapped.Item != nil {
		return *wrapped.Item, nil
	}
	var w wireItem
	if err := json.Unmarshal(raw, &w); err != nil {
		return wireItem{}, fmt.Errorf("%w: %v", item.ErrMalformedRecord, err)
	}
	return w, nil
}

// wireInput is the body the backend expects for create and update.
type wireInput struct {
	ItemID            string            `json:"item_id"`
	SKU               string            `json:"sku"`
	Title             string            `json:"title"`
	ImageURL          string            `json:"image_url"`
	Description       string            `json:"description"`
	OriginCountryCode string            `json:"origin_country_code"`
	BrandID           string            `json:"brand_id"`
	TypeID            string            `json:"type_id"`
	Price             map[string]string `json:"price"`
	Volume            map[string]string `json:"volume"`
	AlcoholVolume     map[string]string `json:"alcohol_volume"`
	Quantity          int               `json:"quantity"`
}

func toWireInput(in item.ItemInput) wireInput {
	return wireInput{
		ItemID:            in.ItemID,
		SKU:               in.SKU,
		Title:             in.Title,
		ImageURL:          in.ImageURL,
		Description:       in.Description,
		OriginCountryCode: in.OriginCountryCode,
		BrandID:           in.BrandID,
		TypeID:            in.TypeID,
		Price:             map[string]string{"currency": in.Price.Currency, "amount": in.Price.Amount},
		Volume:            map[string]string{"unit": in.Volume.Unit, "amount": in.Volume.Amount},
		AlcoholVolume:     map[string]string{"unit": in.AlcoholVolume.Unit, "amount": in.AlcoholVolume.Amount},
		Quantity:          in.Quantity,
	}
}
