package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lucasortiz/dayplan/internal/ratelimit"
)

// RateLimiter implements ratelimit.Limiter using a fixed window counter
// persisted in SQLite, so limits survive process restarts.
type RateLimiter struct {
	db  *sql.DB
	now func() time.Time
}

// NewRateLimiter creates a rate limiter backed by the repository's database.
func NewRateLimiter(s *SQLite) *RateLimiter {
	return &RateLimiter{db: s.db, now: time.Now}
}

// Check records an attempt for (userID, action) and reports whether it is
// allowed. Expired windows are reset in place; an over-limit check does not
// extend the window.
func (r *RateLimiter) Check(ctx context.Context, userID, action string, maxRequests, windowSeconds int) (ratelimit.Result, error) {
	key := fmt.Sprintf("%s:%s", userID, action)
	now := r.now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return ratelimit.Result{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		count     int
		expiresAt string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT count, expires_at FROM rate_limits WHERE key = ?`, key,
	).Scan(&count, &expiresAt)

	switch {
	case err == sql.ErrNoRows:
		count = 0
	case err != nil:
		return ratelimit.Result{}, fmt.Errorf("querying rate limit: %w", err)
	default:
		expiry, err := time.Parse(time.RFC3339, expiresAt)
		if err != nil {
			return ratelimit.Result{}, fmt.Errorf("parsing expiry: %w", err)
		}
		if !now.Before(expiry) {
			count = 0 // window expired, start fresh
		} else if count >= maxRequests {
			retryAfter := int(expiry.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			return ratelimit.Result{Allowed: false, Remaining: 0, RetryAfter: retryAfter}, nil
		}
	}

	expiry := now.Add(time.Duration(windowSeconds) * time.Second)
	if count > 0 {
		// Keep the existing window; only bump the counter.
		_, err = tx.ExecContext(ctx,
			`UPDATE rate_limits SET count = count + 1 WHERE key = ?`, key)
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO rate_limits (key, count, window_start, expires_at)
			VALUES (?, 1, ?, ?)
			ON CONFLICT(key) DO UPDATE SET count = 1, window_start = excluded.window_start, expires_at = excluded.expires_at
		`, key, storeTime(now), storeTime(expiry))
	}
	if err != nil {
		return ratelimit.Result{}, fmt.Errorf("recording rate limit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ratelimit.Result{}, fmt.Errorf("committing transaction: %w", err)
	}

	remaining := maxRequests - count - 1
	if remaining < 0 {
		remaining = 0
	}
	return ratelimit.Result{Allowed: true, Remaining: remaining}, nil
}
