package http

import (
	"errors"
	"net/http"

	"pourpal-backoffice/internal/auth"
	pkgErrors "pourpal-backoffice/pkg/errors"
)

var errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, auth.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, auth.ErrDuplicate):
		return pkgErrors.NewHTTPError(http.StatusConflict, "This email is already registered.")
	case errors.Is(err, auth.ErrRejected):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Request was rejected, please check the form.")
	default:
		return pkgErrors.ErrBadGateway
	}
}
