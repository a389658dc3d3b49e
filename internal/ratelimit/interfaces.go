// Package ratelimit implements the abuse-deterrence rate gate applied to the
// public and login route groups.
//
// The limiter is an injected component so the process-local memory
// implementation can be swapped for a shared external counter without
// touching call sites.
package ratelimit

//go:generate mockgen -source=interfaces.go -destination=../mock/ratelimit_mock.go -package=mock

import "time"

// Limiter is the check-and-increment contract consumed by the rate-gate
// middleware. Each gated route group owns its own Limiter instance; keys are
// normalized client identifiers (the resolved client IP).
type Limiter interface {
	// Allow records one request for key and reports whether it fits inside
	// the current window. When the ceiling is exceeded the second return
	// value carries the duration until the window resets, suitable for a
	// Retry-After header.
	Allow(key string) (bool, time.Duration)

	// Purge drops every expired window. Called periodically by the janitor
	// worker; Allow also expires keys lazily on access.
	Purge()
}
