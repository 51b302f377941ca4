package auth

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// sessionCache provides an in-memory LRU cache for session lookups with
// time-based expiration, so hot requests do not hit the sessions table.
type sessionCache struct {
	lru *expirable.LRU[string, *domain.Session]
}

// newSessionCache creates a session cache with the given size and TTL.
func newSessionCache(size int, ttl time.Duration) *sessionCache {
	return &sessionCache{
		lru: expirable.NewLRU[string, *domain.Session](size, nil, ttl),
	}
}

// Get retrieves a session by token. A cached session may still be expired;
// callers must check Expired themselves.
func (c *sessionCache) Get(token string) (*domain.Session, bool) {
	return c.lru.Get(token)
}

// Set stores a session in the cache.
func (c *sessionCache) Set(session *domain.Session) {
	c.lru.Add(session.Token, session)
}

// Invalidate removes a session from the cache, e.g. on logout.
func (c *sessionCache) Invalidate(token string) {
	c.lru.Remove(token)
}
