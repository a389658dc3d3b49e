// Package service implements the business rules of the voucher API on top of
// the persistence and adapter layers: authentication and token lifecycle,
// tenant management, and the voucher creation pipeline.
package service

import (
	"github.com/rotaviva/voucher-api/internal/adapter"
	"github.com/rotaviva/voucher-api/internal/config"
	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/store"
	"github.com/rotaviva/voucher-api/internal/validators"
)

// Services aggregates every business-logic service consumed by the HTTP layer.
type Services struct {
	AuthService
	AgencyService
	VoucherService
}

// NewServices wires the services to the given repositories, object store, and
// configuration.
func NewServices(storages *store.Storages, objects adapter.ObjectStore, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.AgencyRepository, cfg.App, log),
		AgencyService:  NewAgencyService(storages.AgencyRepository, storages.UserRepository, objects, log),
		VoucherService: NewVoucherService(storages.VoucherRepository, storages.AgencyRepository, validators.NewVoucherValidator(), log),
	}
}
