package querycache

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// scopeNamespace seeds the uuid v5 fingerprints of caller tokens.
var scopeNamespace = uuid.MustParse("0f5d3c1e-6a8b-4a51-9b1f-7c0f3f4e2a10")

// Cache is a short-lived read cache keyed by "<resource>|<params>|<scope>".
// A successful mutation invalidates every key of its resource.
type Cache struct {
	lru *expirable.LRU[string, any]
}

// New creates a cache holding at most size entries for ttl each.
func New(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 512
	}
	return &Cache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

// Key builds a cache key. The token is only stored as a fingerprint.
func Key(resource, params, token string) string {
	scope := "anonymous"
	if token != "" {
		scope = uuid.NewSHA1(scopeNamespace, []byte(token)).String()
	}
	return fmt.Sprintf("%s|%s|%s", resource, params, scope)
}

// Get returns the cached value for key.
func (c *Cache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

// Set stores value under key.
func (c *Cache) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Invalidate drops every entry of resource and returns how many were removed.
func (c *Cache) Invalidate(resource string) int {
	prefix := resource + "|"
	removed := 0
	for _, k := range c.lru.Keys() {
		if strings.HasPrefix(k, prefix) && c.lru.Remove(k) {
			removed++
		}
	}
	return removed
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Fetch returns the cached T for key or calls load and caches its result.
// Load errors are never cached.
func Fetch[T any](c *Cache, key string, load func() (T, error)) (T, bool, error) {
	if c != nil {
		if v, ok := c.Get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, true, nil
			}
		}
	}
	v, err := load()
	if err != nil {
		return v, false, err
	}
	if c != nil {
		c.Set(key, v)
	}
	return v, false, nil
}
