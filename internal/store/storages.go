package store

import (
	"github.com/rotaviva/voucher-api/internal/logger"
)

// Storages bundles every repository backed by the shared database connection.
// It is the single persistence entry point handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	AgencyRepository  AgencyRepository
	VoucherRepository VoucherRepository
}

// NewStorages constructs all repositories on top of the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		AgencyRepository:  NewAgencyRepository(db, logger),
		VoucherRepository: NewVoucherRepository(db, logger),
	}
}
