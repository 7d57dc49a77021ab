package item

import "pourpal-backoffice/pkg/paging"

// Resource is the cache and backend key shared by every item query.
const Resource = "items"

// Allowed units and currencies.
var (
	Currencies   = []string{"€", "$"}
	VolumeUnits  = []string{"ml", "cl", "dl", "l"}
	AlcoholUnits = []string{"%"}
)

type Price struct {
	Currency string
	Amount   string
}

type Volume struct {
	Unit   string
	Amount string
}

type AlcoholVolume struct {
	Unit   string
	Amount string
}

// Item is the flat inventory record shown in forms and tables.
// Amounts stay decimal strings so no precision is lost on the way to the UI.
type Item struct {
	ID                string
	SKU               string
	Title             string
	TypeID            string
	TypeName          string
	BrandID           string
	BrandName         string
	OriginCountryCode string
	OriginCountryName string
	Price             Price
	Volume            Volume
	AlcoholVolume     AlcoholVolume
	Quantity          int
	ImageURL          string
	Description       string
	AddedAt           string
	UpdatedAt         string
}

// --- UseCase Inputs ---

// ItemInput is the validated create/update payload.
type ItemInput struct {
	ItemID            string
	SKU               string
	Title             string
	ImageURL          string
	Description       string
	OriginCountryCode string
	BrandID           string
	TypeID            string
	Price             Price
	Volume            Volume
	AlcoholVolume     AlcoholVolume
	Quantity          int
}

type ListInput struct {
	Search     string
	PageSize   int
	PageNumber int
}

// DeleteInput carries the list position the delete was issued from.
type DeleteInput struct {
	ID   string
	List ListInput
}

// --- UseCase Outputs ---

type ListOutput struct {
	Items  []Item
	Paging paging.Paging
}

type DeleteOutput struct {
	// PageNumber is the page the list should show next.
	PageNumber int
}
