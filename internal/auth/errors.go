package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("session is missing or expired")
	ErrDuplicate          = errors.New("account already exists")
	ErrRejected           = errors.New("request rejected by backend")
	ErrMissingToken       = errors.New("backend returned no access token")
)
