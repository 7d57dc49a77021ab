package auth

import "pourpal-backoffice/pkg/session"

// Resource is the cache resource of the profile query.
const Resource = "auth"

type Credentials struct {
	Email    string
	Password string
}

// Profile of the signed-in backoffice user.
type Profile struct {
	Email     string
	Role      string
	FullName  string
	IsActive  bool
	CreatedAt string
	UpdatedAt string
}

type LoginOutput struct {
	Tokens session.Tokens
}
