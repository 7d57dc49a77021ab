package item

import "errors"

var (
	ErrNotFound        = errors.New("item not found")
	ErrDuplicate       = errors.New("item already exists")
	ErrUnauthenticated = errors.New("session is missing or expired")
	ErrRejected        = errors.New("item rejected by backend")
	ErrMalformedRecord = errors.New("malformed item record")
	ErrInvalidPaging   = errors.New("invalid paging envelope")
)
