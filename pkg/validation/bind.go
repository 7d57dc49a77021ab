package validation

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	pkgErrors "pourpal-backoffice/pkg/errors"
)

// BindError keeps validator errors as they are, so they render per field,
// and turns any other binding failure (bad JSON, wrong types) into a 400.
func BindError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
}
