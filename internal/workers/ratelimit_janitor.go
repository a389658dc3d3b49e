package workers

import (
	"context"
	"time"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/ratelimit"
)

// RateLimitJanitor periodically purges expired windows from the rate
// limiters so idle client keys do not accumulate in memory.
type RateLimitJanitor struct {
	limiters []ratelimit.Limiter
	interval time.Duration
	ctx      context.Context
	logger   *logger.Logger
}

// NewRateLimitJanitor builds a janitor sweeping the given limiters every
// interval until ctx is cancelled.
func NewRateLimitJanitor(ctx context.Context, interval time.Duration, log *logger.Logger, limiters ...ratelimit.Limiter) *RateLimitJanitor {
	return &RateLimitJanitor{
		limiters: limiters,
		interval: interval,
		ctx:      ctx,
		logger:   log,
	}
}

// Run implements [Worker]. It spawns the sweep goroutine and returns.
func (j *RateLimitJanitor) Run() {
	j.logger.Info().Dur("interval", j.interval).Msg("rate-limit janitor started")

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-j.ctx.Done():
				j.logger.Info().Msg("rate-limit janitor stopped")
				return
			case <-ticker.C:
				for _, limiter := range j.limiters {
					limiter.Purge()
				}
			}
		}
	}()
}
