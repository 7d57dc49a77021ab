package restclient

import (
	"fmt"
	"net/http"
)

// Kind is the failure class callers branch on.
type Kind int

const (
	KindNone Kind = iota
	// KindNetwork covers transport, read and decode failures.
	KindNetwork
	KindConflict
	KindUnauthorized
	KindNotFound
	KindRejected
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindRejected:
		return "rejected"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Classify maps an error returned by Client into a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	apiErr, ok := AsError(err)
	if !ok {
		return KindNetwork
	}
	switch code := apiErr.StatusCode; {
	case code == http.StatusConflict:
		return KindConflict
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return KindUnauthorized
	case code == http.StatusNotFound:
		return KindNotFound
	case code >= 500:
		return KindServer
	default:
		return KindRejected
	}
}

// IsConflict reports whether err is a 409 response.
func IsConflict(err error) bool {
	return Classify(err) == KindConflict
}

// Translate wraps err with the domain error registered for its Kind, keeping
// the original error in the chain. Unmapped kinds are returned unchanged.
func Translate(err error, domain map[Kind]error) error {
	if err == nil {
		return nil
	}
	if target, ok := domain[Classify(err)]; ok && target != nil {
		return fmt.Errorf("%w: %w", target, err)
	}
	return err
}
