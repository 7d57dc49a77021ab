package restclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is returned for any non-2xx response.
type Error struct {
	Method     string
	Endpoint   string
	StatusCode int
	Status     string
	Header     http.Header
	// Data is the parsed JSON error body, nil when the body was not JSON.
	Data any
	Body []byte
}

func newError(method, endpoint string, resp *http.Response, raw []byte) *Error {
	e := &Error{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header.Clone(),
		Body:       raw,
	}
	var data any
	if len(raw) > 0 && json.Unmarshal(raw, &data) == nil {
		e.Data = data
	}
	return e
}

func (e *Error) Error() string {
	return fmt.Sprintf("restclient: %s %s: an API error with status %d occurred", e.Method, e.Endpoint, e.StatusCode)
}

// Message returns the backend's "message" field when the error body carries one.
func (e *Error) Message() string {
	m, ok := e.Data.(map[string]any)
	if !ok {
		return ""
	}
	if msg, ok := m["message"].(string); ok {
		return msg
	}
	return ""
}

// AsError unwraps err into *Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an API error.
func StatusCode(err error) int {
	if apiErr, ok := AsError(err); ok {
		return apiErr.StatusCode
	}
	return 0
}
