package taxonomy

import "errors"

var (
	ErrNotFound        = errors.New("taxonomy entry not found")
	ErrDuplicate       = errors.New("taxonomy label already exists")
	ErrUnauthenticated = errors.New("session is missing or expired")
	ErrRejected        = errors.New("taxonomy entry rejected by backend")
	ErrMalformed       = errors.New("malformed taxonomy response")
)
