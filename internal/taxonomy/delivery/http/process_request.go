package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "pourpal-backoffice/pkg/errors"
	"pourpal-backoffice/pkg/validation"
)

func (h *handler) processLabelReq(c *gin.Context, req labelReq) (string, error) {
	if err := c.ShouldBindJSON(req); err != nil {
		return "", validation.BindError(err)
	}
	label := req.label()
	if label == "" {
		return "", pkgErrors.NewHTTPError(http.StatusBadRequest, "Required")
	}
	return label, nil
}

func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return id, nil
}
