package http

import (
	"errors"
	"fmt"
	"net/http"

	"pourpal-backoffice/internal/taxonomy"
	pkgErrors "pourpal-backoffice/pkg/errors"
)

func (h *handler) mapError(kind taxonomy.Kind, label string, err error) error {
	switch {
	case errors.Is(err, taxonomy.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, taxonomy.ErrDuplicate):
		return pkgErrors.NewHTTPError(http.StatusConflict,
			fmt.Sprintf("%s '%s' already exists, please use another name.", kind.Label, label))
	case errors.Is(err, taxonomy.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, kind.Label+" not found")
	case errors.Is(err, taxonomy.ErrRejected):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, kind.Label+" was rejected")
	default:
		return pkgErrors.ErrBadGateway
	}
}
