package http

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/taxonomy"
	"pourpal-backoffice/pkg/log"
)

// Handler serves item brands, item types and item countries.
type Handler interface {
	ListBrands(c *gin.Context)
	CreateBrand(c *gin.Context)
	UpdateBrand(c *gin.Context)
	DeleteBrand(c *gin.Context)

	ListTypes(c *gin.Context)
	CreateType(c *gin.Context)
	UpdateType(c *gin.Context)
	DeleteType(c *gin.Context)

	ListCountries(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc taxonomy.UseCase
}

func New(l log.Logger, uc taxonomy.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
