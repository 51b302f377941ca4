package auth

import "time"

const (
	// SessionCookieName is the cookie carrying the opaque session token
	SessionCookieName = "stockroom_session"

	// FlashCookieName is the one-shot cookie carrying a transient user message
	FlashCookieName = "stockroom_flash"

	// LoginPath is where unauthenticated requests to protected routes are sent
	LoginPath = "/login"
)

// Session cache sizing. The cache TTL is deliberately short relative to the
// session TTL so revoked sessions stop resolving within minutes.
const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 5 * time.Minute
)
