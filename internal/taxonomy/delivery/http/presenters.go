package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/taxonomy"
)

type brandReq struct {
	Brand string `json:"brand" binding:"required"`
}

type typeReq struct {
	Type string `json:"type" binding:"required"`
}

// labelReq is satisfied by every taxonomy write body.
type labelReq interface {
	label() string
}

func (r *brandReq) label() string { return strings.TrimSpace(r.Brand) }
func (r *typeReq) label() string  { return strings.TrimSpace(r.Type) }

// newListResp renders {"brands": [{"brand_id": .., "brand": ..}]} and the like.
func newListResp(kind taxonomy.Kind, entries []taxonomy.Entry) gin.H {
	rows := make([]map[string]string, len(entries))
	for i, e := range entries {
		rows[i] = map[string]string{kind.IDField: e.ID, kind.LabelField: e.Label}
	}
	return gin.H{kind.ListField: rows}
}

type countryResp struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Unicode string `json:"unicode"`
}

type countriesResp struct {
	Countries []countryResp `json:"countries"`
}

func newCountriesResp(countries []taxonomy.Country) countriesResp {
	out := make([]countryResp, len(countries))
	for i, c := range countries {
		out[i] = countryResp{Code: c.Code, Name: c.Name, Emoji: c.Emoji, Unicode: c.Unicode}
	}
	return countriesResp{Countries: out}
}
