package http

import (
	"strings"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/pkg/paging"
)

// --- Request DTOs ---

type priceReq struct {
	Currency string `json:"currency" binding:"required,oneof=€ $"`
	Amount   string `json:"amount"   binding:"required,decimal,dec_gt=0"`
}

type volumeReq struct {
	Unit   string `json:"unit"   binding:"required,oneof=ml cl dl l"`
	Amount string `json:"amount" binding:"required,decimal,dec_gt=0"`
}

type alcoholVolumeReq struct {
	Unit   string `json:"unit"   binding:"required,oneof=%"`
	Amount string `json:"amount" binding:"required,decimal,dec_between=0 100"`
}

type itemReq struct {
	ItemID            string           `json:"item_id"`
	SKU               string           `json:"sku"`
	Title             string           `json:"title"               binding:"required"`
	ImageURL          string           `json:"image_url"           binding:"required,url"`
	Description       string           `json:"description"`
	OriginCountryCode string           `json:"origin_country_code" binding:"required"`
	BrandID           string           `json:"brand_id"            binding:"required"`
	TypeID            string           `json:"type_id"             binding:"required"`
	Price             priceReq         `json:"price"`
	Volume            volumeReq        `json:"volume"`
	AlcoholVolume     alcoholVolumeReq `json:"alcohol_volume"`
	Quantity          *int             `json:"quantity"            binding:"required,gte=0"`
}

func (r itemReq) validate() error { return nil }

func (r itemReq) toInput() item.ItemInput {
	quantity := 0
	if r.Quantity != nil {
		quantity = *r.Quantity
	}
	return item.ItemInput{
		ItemID:            r.ItemID,
		SKU:               r.SKU,
		Title:             r.Title,
		ImageURL:          r.ImageURL,
		Description:       r.Description,
		OriginCountryCode: r.OriginCountryCode,
		BrandID:           r.BrandID,
		TypeID:            r.TypeID,
		Price:             item.Price{Currency: r.Price.Currency, Amount: strings.TrimSpace(r.Price.Amount)},
		Volume:            item.Volume{Unit: r.Volume.Unit, Amount: strings.TrimSpace(r.Volume.Amount)},
		AlcoholVolume:     item.AlcoholVolume{Unit: r.AlcoholVolume.Unit, Amount: strings.TrimSpace(r.AlcoholVolume.Amount)},
		Quantity:          quantity,
	}
}

type listReq struct {
	Search     string `form:"search"`
	PageSize   int    `form:"page_size"`
	PageNumber int    `form:"page_number"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() item.ListInput {
	return item.ListInput{
		Search:     r.Search,
		PageSize:   r.PageSize,
		PageNumber: r.PageNumber,
	}
}

// --- Response DTOs ---

type priceResp struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

type volumeResp struct {
	Unit   string `json:"unit"`
	Amount string `json:"amount"`
}

type itemResp struct {
	ItemID            string     `json:"item_id"`
	SKU               string     `json:"sku"`
	Title             string     `json:"title"`
	TypeID            string     `json:"type_id"`
	TypeName          string     `json:"type_name"`
	BrandID           string     `json:"brand_id"`
	BrandName         string     `json:"brand_name"`
	OriginCountryCode string     `json:"origin_country_code"`
	OriginCountryName string     `json:"origin_country_name"`
	Price             priceResp  `json:"price"`
	Volume            volumeResp `json:"volume"`
	AlcoholVolume     volumeResp `json:"alcohol_volume"`
	Quantity          int        `json:"quantity"`
	ImageURL          string     `json:"image_url"`
	Description       string     `json:"description"`
	AddedAt           string     `json:"added_at"`
	UpdatedAt         string     `json:"updated_at"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ItemID:            it.ID,
		SKU:               it.SKU,
		Title:             it.Title,
		TypeID:            it.TypeID,
		TypeName:          it.TypeName,
		BrandID:           it.BrandID,
		BrandName:         it.BrandName,
		OriginCountryCode: it.OriginCountryCode,
		OriginCountryName: it.OriginCountryName,
		Price:             priceResp{Currency: it.Price.Currency, Amount: it.Price.Amount},
		Volume:            volumeResp{Unit: it.Volume.Unit, Amount: it.Volume.Amount},
		AlcoholVolume:     volumeResp{Unit: it.AlcoholVolume.Unit, Amount: it.AlcoholVolume.Amount},
		Quantity:          it.Quantity,
		ImageURL:          it.ImageURL,
		Description:       it.Description,
		AddedAt:           it.AddedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

type listResp struct {
	Items  []itemResp    `json:"items"`
	Paging paging.Paging `json:"paging"`
}

func (h *handler) newListResp(out item.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{Items: items, Paging: out.Paging}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

type deleteResp struct {
	PageNumber int `json:"page_number"`
}
