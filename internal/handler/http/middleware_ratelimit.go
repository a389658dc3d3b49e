package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/metrics"
	"github.com/rotaviva/voucher-api/internal/ratelimit"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/models"
)

// withRateLimit builds a middleware gating requests through the given limiter,
// keyed by client IP. Rejected requests get a 429 with a Retry-After header
// reporting when the window resets. State is process-local; see the ratelimit
// package.
func (h *Handler) withRateLimit(limiter ratelimit.Limiter, gate string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			key := clientIP(r)
			ok, retryAfter := limiter.Allow(key)
			if !ok {
				metrics.RateLimitedTotal.WithLabelValues(gate).Inc()

				seconds := int(retryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))

				log.Warn().
					Str("gate", gate).
					Str("key", key).
					Int("retry_after_seconds", seconds).
					Msg("rate limit exceeded")
				utils.WriteJSON(w, models.ErrorResponse{Message: "too many requests"}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the caller's address: the first X-Forwarded-For entry
// when present (the service is expected to sit behind a trusted proxy),
// otherwise the connection's remote host.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
