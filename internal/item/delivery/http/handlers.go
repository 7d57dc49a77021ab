package http

import (
	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/pkg/response"
)

// List godoc
// @Summary     List items
// @Description Returns one page of inventory items, optionally filtered by a search term.
// @Tags        Items
// @Produce     json
// @Param       search      query string false "Search term"
// @Param       page_size   query int    false "Page size (10, 20, 30, 40, 50)"
// @Param       page_number query int    false "Page number, starting at 1"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "item.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get item
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	it, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "item.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Item: newItemResp(it)})
}

// Create godoc
// @Summary     Create item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body itemReq true "Item"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     409 {object} response.Resp "Duplicate"
// @Router      /v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Create(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "item.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Update godoc
// @Summary     Update item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Item ID"
// @Param       body body itemReq true "Item"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Update(ctx, id, req.toInput()); err != nil {
		h.l.Errorf(ctx, "item.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete item
// @Description Deletes an item and returns the page number the list should show next.
// @Tags        Items
// @Produce     json
// @Param       id          path  string true  "Item ID"
// @Param       search      query string false "Search term of the current list"
// @Param       page_size   query int    false "Page size of the current list"
// @Param       page_number query int    false "Page number of the current list"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Delete(ctx, item.DeleteInput{ID: id, List: req.toInput()})
	if err != nil {
		h.l.Errorf(ctx, "item.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{PageNumber: out.PageNumber})
}
