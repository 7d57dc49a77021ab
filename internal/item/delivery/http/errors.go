package http

import (
	"errors"
	"net/http"

	"pourpal-backoffice/internal/item"
	pkgErrors "pourpal-backoffice/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, item.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Item not found")
	case errors.Is(err, item.ErrDuplicate):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Item already exists, please use another SKU.")
	case errors.Is(err, item.ErrRejected):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Item was rejected, please check the form.")
	default:
		return pkgErrors.ErrBadGateway
	}
}
