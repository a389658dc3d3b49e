// Package http implements the HTTP transport layer of the voucher API.
// It provides middleware, route handlers, and request/response utilities
// for the REST surface. Tracing, logging, metrics, authentication, role
// checks, and rate limiting are all handled at this layer before requests
// are forwarded to the service layer.
package http

import (
	"context"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/ratelimit"
	"github.com/rotaviva/voucher-api/internal/service"
)

// Pinger is the slice of the database handle the health endpoint needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       Pinger

	loginLimiter  ratelimit.Limiter
	publicLimiter ratelimit.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, loginLimiter, publicLimiter ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		db:            db,
		loginLimiter:  loginLimiter,
		publicLimiter: publicLimiter,
		logger:        logger,
	}
}
