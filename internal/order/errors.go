package order

import "errors"

var (
	ErrUnauthenticated = errors.New("session is missing or expired")
	ErrInvalidPaging   = errors.New("invalid paging envelope")
	ErrRejected        = errors.New("order query rejected by backend")
)
