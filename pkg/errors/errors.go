package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows which status and message to expose.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "Something went wrong. Please, try again later.")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong. Please, try again later.")
)

// AsHTTPError unwraps err into an *HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
