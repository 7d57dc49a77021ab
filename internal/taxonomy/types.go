package taxonomy

// Kind describes one labelled taxonomy collection of the backend.
type Kind struct {
	Resource   string // backend path and cache resource, e.g. "item-brands"
	Label      string // human name used in messages
	ListField  string // list envelope key
	IDField    string
	LabelField string
}

var (
	Brands = Kind{Resource: "item-brands", Label: "Brand", ListField: "brands", IDField: "brand_id", LabelField: "brand"}
	Types  = Kind{Resource: "item-types", Label: "Type", ListField: "types", IDField: "type_id", LabelField: "type"}
)

// CountriesResource is the backend path of the read-only country list.
const CountriesResource = "item-countries"

// Entry is one brand or type.
type Entry struct {
	ID    string
	Label string
}

type Country struct {
	Code    string
	Name    string
	Emoji   string
	Unicode string
}
