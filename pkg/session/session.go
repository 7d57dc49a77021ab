package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Tokens is the token pair issued by the backend on login.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Options are the cookie attributes that depend on deployment.
type Options struct {
	Secure bool
	Path   string
	Domain string
}

// DefaultOptions are the production attributes.
func DefaultOptions() Options {
	return Options{Secure: true, Path: "/"}
}

// Cookie describes one session cookie. ExpiresMillis is an absolute unix timestamp in milliseconds.
type Cookie struct {
	Name          string
	Value         string
	ExpiresMillis int64
	SameSite      http.SameSite
	HTTPOnly      bool
	Secure        bool
	Path          string
	Domain        string
}

// HTTP converts the descriptor into a Set-Cookie value.
func (c Cookie) HTTP() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Expires:  time.UnixMilli(c.ExpiresMillis).UTC(),
		SameSite: c.SameSite,
		HttpOnly: c.HTTPOnly,
		Secure:   c.Secure,
		Path:     c.Path,
		Domain:   c.Domain,
	}
}

// ExpiresAt returns the token's exp claim converted to milliseconds.
// The signature is not verified; the backend owns that. A token without exp yields 0.
// Fractional seconds are kept.
func ExpiresAt(token string) (int64, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser(jwt.WithJSONNumber()).ParseUnverified(token, claims); err != nil {
		return 0, fmt.Errorf("session: failed to decode token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return 0, fmt.Errorf("session: invalid exp claim: %w", err)
	}
	if exp == nil {
		return 0, nil
	}
	raw, ok := claims["exp"].(json.Number)
	if !ok {
		return exp.UnixMilli(), nil
	}
	secs, err := decimal.NewFromString(raw.String())
	if err != nil {
		return 0, fmt.Errorf("session: invalid exp claim: %w", err)
	}
	return secs.Mul(decimal.NewFromInt(1000)).IntPart(), nil
}

// NewCookie builds a strict, http-only session cookie expiring with the token.
func NewCookie(name, token string, opt Options) (Cookie, error) {
	expires, err := ExpiresAt(token)
	if err != nil {
		return Cookie{}, err
	}
	return Cookie{
		Name:          name,
		Value:         token,
		ExpiresMillis: expires,
		SameSite:      http.SameSiteStrictMode,
		HTTPOnly:      true,
		Secure:        opt.Secure,
		Path:          opt.Path,
		Domain:        opt.Domain,
	}, nil
}

// Cookies builds the access token cookie and, when present, the refresh token cookie.
func Cookies(tokens Tokens, opt Options) ([]Cookie, error) {
	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("session: access token is empty")
	}
	access, err := NewCookie(AccessTokenCookie, tokens.AccessToken, opt)
	if err != nil {
		return nil, err
	}
	cookies := []Cookie{access}

	if tokens.RefreshToken != "" {
		refresh, err := NewCookie(RefreshTokenCookie, tokens.RefreshToken, opt)
		if err != nil {
			return nil, err
		}
		cookies = append(cookies, refresh)
	}
	return cookies, nil
}

// Expired builds a cookie that deletes name in the browser.
func Expired(name string, opt Options) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Unix(0, 0).UTC(),
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   opt.Secure,
		Path:     opt.Path,
		Domain:   opt.Domain,
	}
}

// FromRequest returns the access and refresh tokens present on r.
func FromRequest(r *http.Request) (access, refresh string) {
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		access = c.Value
	}
	if c, err := r.Cookie(RefreshTokenCookie); err == nil {
		refresh = c.Value
	}
	return access, refresh
}
