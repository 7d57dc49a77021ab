package http

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/taxonomy"
	"pourpal-backoffice/pkg/response"
)

func (h *handler) list(c *gin.Context, kind taxonomy.Kind) {
	ctx := c.Request.Context()

	entries, err := h.uc.List(ctx, kind)
	if err != nil {
		h.l.Errorf(ctx, "taxonomy.http.list %s: %v", kind.Resource, err)
		response.Error(c, h.mapError(kind, "", err))
		return
	}
	response.OK(c, newListResp(kind, entries))
}

func (h *handler) create(c *gin.Context, kind taxonomy.Kind, req labelReq) {
	ctx := c.Request.Context()

	label, err := h.processLabelReq(c, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Create(ctx, kind, label); err != nil {
		h.l.Errorf(ctx, "taxonomy.http.create %s: %v", kind.Resource, err)
		response.Error(c, h.mapError(kind, label, err))
		return
	}
	response.OK(c, nil)
}

func (h *handler) update(c *gin.Context, kind taxonomy.Kind, req labelReq) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	label, err := h.processLabelReq(c, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Update(ctx, kind, id, label); err != nil {
		h.l.Errorf(ctx, "taxonomy.http.update %s: %v", kind.Resource, err)
		response.Error(c, h.mapError(kind, label, err))
		return
	}
	response.OK(c, nil)
}

func (h *handler) delete(c *gin.Context, kind taxonomy.Kind) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, kind, id); err != nil {
		h.l.Errorf(ctx, "taxonomy.http.delete %s: %v", kind.Resource, err)
		response.Error(c, h.mapError(kind, "", err))
		return
	}
	response.OK(c, nil)
}

// ListBrands godoc
// @Summary  List item brands
// @Tags     Taxonomy
// @Produce  json
// @Success  200 {object} response.Resp
// @Router   /v1/item-brands [GET]
func (h *handler) ListBrands(c *gin.Context) { h.list(c, taxonomy.Brands) }

// CreateBrand godoc
// @Summary  Create item brand
// @Tags     Taxonomy
// @Accept   json
// @Produce  json
// @Param    body body brandReq true "Brand"
// @Success  200 {object} response.Resp
// @Failure  409 {object} response.Resp "Brand already exists"
// @Router   /v1/item-brands [POST]
func (h *handler) CreateBrand(c *gin.Context) { h.create(c, taxonomy.Brands, &brandReq{}) }

// UpdateBrand godoc
// @Summary  Rename item brand
// @Tags     Taxonomy
// @Accept   json
// @Produce  json
// @Param    id   path string   true "Brand ID"
// @Param    body body brandReq true "Brand"
// @Success  200 {object} response.Resp
// @Failure  409 {object} response.Resp "Brand already exists"
// @Router   /v1/item-brands/{id} [PUT]
func (h *handler) UpdateBrand(c *gin.Context) { h.update(c, taxonomy.Brands, &brandReq{}) }

// DeleteBrand godoc
// @Summary  Delete item brand
// @Tags     Taxonomy
// @Param    id path string true "Brand ID"
// @Success  200 {object} response.Resp
// @Router   /v1/item-brands/{id} [DELETE]
func (h *handler) DeleteBrand(c *gin.Context) { h.delete(c, taxonomy.Brands) }

// ListTypes godoc
// @Summary  List item types
// @Tags     Taxonomy
// @Produce  json
// @Success  200 {object} response.Resp
// @Router   /v1/item-types [GET]
func (h *handler) ListTypes(c *gin.Context) { h.list(c, taxonomy.Types) }

// CreateType godoc
// @Summary  Create item type
// @Tags     Taxonomy
// @Accept   json
// @Produce  json
// @Param    body body typeReq true "Type"
// @Success  200 {object} response.Resp
// @Failure  409 {object} response.Resp "Type already exists"
// @Router   /v1/item-types [POST]
func (h *handler) CreateType(c *gin.Context) { h.create(c, taxonomy.Types, &typeReq{}) }

// UpdateType godoc
// @Summary  Rename item type
// @Tags     Taxonomy
// @Accept   json
// @Produce  json
// @Param    id   path string  true "Type ID"
// @Param    body body typeReq true "Type"
// @Success  200 {object} response.Resp
// @Router   /v1/item-types/{id} [PUT]
func (h *handler) UpdateType(c *gin.Context) { h.update(c, taxonomy.Types, &typeReq{}) }

// DeleteType godoc
// @Summary  Delete item type
// @Tags     Taxonomy
// @Param    id path string true "Type ID"
// @Success  200 {object} response.Resp
// @Router   /v1/item-types/{id} [DELETE]
func (h *handler) DeleteType(c *gin.Context) { h.delete(c, taxonomy.Types) }

// ListCountries godoc
// @Summary  List item countries
// @Tags     Taxonomy
// @Produce  json
// @Success  200 {object} countriesResp
// @Router   /v1/item-countries [GET]
func (h *handler) ListCountries(c *gin.Context) {
	ctx := c.Request.Context()

	countries, err := h.uc.ListCountries(ctx)
	if err != nil {
		h.l.Errorf(ctx, "taxonomy.http.ListCountries: %v", err)
		response.Error(c, h.mapError(taxonomy.Kind{Label: "Country"}, "", err))
		return
	}
	response.OK(c, newCountriesResp(countries))
}
