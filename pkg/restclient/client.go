package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	// Timeout applies only when HTTPClient is nil. Zero means no timeout.
	Timeout time.Duration
}

// RequestOptions carries the optional parts of a call.
type RequestOptions struct {
	Params  Params
	Body    any
	Headers map[string]string
}

// Client is a JSON REST client bound to one base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client. Without an explicit HTTPClient, outbound calls are traced with otelhttp.
func New(opt Options) *Client {
	hc := opt.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   opt.Timeout,
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(opt.BaseURL, "/"),
		httpClient: hc,
	}
}

// BaseURL returns the base URL every endpoint is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithBearer returns a copy of the client that sends "Authorization: Bearer <token>".
// An empty token returns the receiver unchanged.
func (c *Client) WithBearer(token string) *Client {
	if token == "" {
		return c
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return &Client{
		baseURL: c.baseURL,
		httpClient: &http.Client{
			Transport:     &oauth2.Transport{Source: src, Base: c.httpClient.Transport},
			CheckRedirect: c.httpClient.CheckRedirect,
			Jar:           c.httpClient.Jar,
			Timeout:       c.httpClient.Timeout,
		},
	}
}

func (c *Client) Get(ctx context.Context, endpoint string, opt RequestOptions, out any) error {
	return c.Do(ctx, http.MethodGet, endpoint, opt, out)
}

func (c *Client) Post(ctx context.Context, endpoint string, opt RequestOptions, out any) error {
	return c.Do(ctx, http.MethodPost, endpoint, opt, out)
}

func (c *Client) Put(ctx context.Context, endpoint string, opt RequestOptions, out any) error {
	return c.Do(ctx, http.MethodPut, endpoint, opt, out)
}

func (c *Client) Patch(ctx context.Context, endpoint string, opt RequestOptions, out any) error {
	return c.Do(ctx, http.MethodPatch, endpoint, opt, out)
}

func (c *Client) Delete(ctx context.Context, endpoint string, opt RequestOptions, out any) error {
	return c.Do(ctx, http.MethodDelete, endpoint, opt, out)
}

func (c *Client) Head(ctx context.Context, endpoint string, opt RequestOptions, out any) error {
	return c.Do(ctx, http.MethodHead, endpoint, opt, out)
}

func (c *Client) Options(ctx context.Context, endpoint string, opt RequestOptions, out any) error {
	return c.Do(ctx, http.MethodOptions, endpoint, opt, out)
}

// Do performs one call. A non-2xx status yields *Error; an empty 2xx body leaves out untouched.
func (c *Client) Do(ctx context.Context, method, endpoint string, opt RequestOptions, out any) error {
	var body io.Reader
	if opt.Body != nil {
		raw, err := json.Marshal(opt.Body)
		if err != nil {
			return fmt.Errorf("restclient: failed to marshal %s %s body: %w", method, endpoint, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(endpoint, opt.Params), body)
	if err != nil {
		return fmt.Errorf("restclient: failed to build %s %s request: %w", method, endpoint, err)
	}
	for k, v := range opt.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("restclient: failed to call %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("restclient: failed to read %s %s response: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(method, endpoint, resp, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("restclient: failed to decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

func (c *Client) buildURL(endpoint string, params Params) string {
	u := c.baseURL + endpoint
	query := params.Encode()
	if query == "" {
		return u
	}
	if strings.Contains(u, "?") {
		return u + "&" + query
	}
	return u + "?" + query
}
