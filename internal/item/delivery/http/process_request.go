package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "pourpal-backoffice/pkg/errors"
	"pourpal-backoffice/pkg/validation"
)

var errMissingID = pkgErrors.NewHTTPError(400, "id is required")

func (h *handler) processItemReq(c *gin.Context) (itemReq, error) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, validation.BindError(err)
	}
	return req, req.validate()
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, validation.BindError(err)
	}
	return req, req.validate()
}

func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
