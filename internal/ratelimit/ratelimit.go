// Package ratelimit defines the throttling interface consumed by the AI
// schedule generator. The SQLite-backed implementation lives in internal/db.
package ratelimit

import (
	"context"
	"fmt"
)

// Result is the outcome of a rate-limit check.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter int // seconds until the window resets; 0 when allowed
}

// Limiter checks whether a user may perform an action. Implementations
// count requests per (userID, action) key within a fixed window.
type Limiter interface {
	Check(ctx context.Context, userID, action string, maxRequests, windowSeconds int) (Result, error)
}

// Error reports an exhausted rate limit. Callers should surface RetryAfter
// as a wait-and-retry hint, not a hard failure.
type Error struct {
	RetryAfter int // seconds
}

func (e *Error) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry in %ds", e.RetryAfter)
}
