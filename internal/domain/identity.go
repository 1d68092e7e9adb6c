package domain

import "time"

// Identity is the request-scoped result of verifying a bearer token.
// It lives for one request and is never persisted.
type Identity struct {
	UserID    int64
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the identity's token lifetime has passed.
// Structural token verification does not enforce expiry; callers do.
func (i Identity) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
