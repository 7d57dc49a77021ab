package model

import "context"

// Scope identifies the caller of a backoffice request.
type Scope struct {
	AccessToken  string
	RefreshToken string
}

type scopeKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the Scope stored by the auth middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok
}
