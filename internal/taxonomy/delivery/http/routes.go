package http

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	brands := rg.Group("/item-brands", mw.Auth())
	{
		brands.GET("", h.ListBrands)
		brands.POST("", h.CreateBrand)
		brands.PUT("/:id", h.UpdateBrand)
		brands.DELETE("/:id", h.DeleteBrand)
	}

	types := rg.Group("/item-types", mw.Auth())
	{
		types.GET("", h.ListTypes)
		types.POST("", h.CreateType)
		types.PUT("/:id", h.UpdateType)
		types.DELETE("/:id", h.DeleteType)
	}

	rg.GET("/item-countries", mw.Auth(), h.ListCountries)
}
