package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/rotaviva/voucher-api/models"
)

// UserRepository is the persistence contract for staff accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account whose email matches exactly.
	// The caller is responsible for normalising the email beforehand.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the account with the given ID.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdatePasswordHash replaces the stored password hash of the account.
	// Returns [ErrNoUserWasFound] when no account matches.
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
}

// AgencyRepository is the persistence contract for tenants.
type AgencyRepository interface {
	// CreateAgency persists a new tenant and returns it with server-assigned
	// fields populated. Returns [ErrSlugAlreadyExists] on a duplicate slug.
	CreateAgency(ctx context.Context, agency models.Agency) (models.Agency, error)

	// ListAgencies returns all tenants ordered by creation time, newest first.
	ListAgencies(ctx context.Context) ([]models.Agency, error)

	// FindAgencyByID retrieves the tenant with the given ID.
	// Returns [ErrAgencyNotFound] when no tenant matches.
	FindAgencyByID(ctx context.Context, id string) (models.Agency, error)

	// UpdateAgencyStatus sets the active flag and returns the updated tenant.
	// Returns [ErrAgencyNotFound] when no tenant matches.
	UpdateAgencyStatus(ctx context.Context, id string, isActive bool) (models.Agency, error)

	// UpdateAgencyBranding applies the tri-state branding fields and returns
	// the updated tenant. Fields whose Set flag is false are left untouched.
	// Returns [ErrAgencyNotFound] when no tenant matches.
	UpdateAgencyBranding(ctx context.Context, id string, logoUrl, primaryColor models.NullableString) (models.Agency, error)
}

// VoucherRepository is the persistence contract for vouchers and their
// nested records.
type VoucherRepository interface {
	// CreateVoucher persists the voucher together with all flight segments
	// and optional sub-records in a single transaction. Either every row
	// commits or none does. Returns [ErrReservationCodeExists] when the
	// reservation code is already taken.
	CreateVoucher(ctx context.Context, voucher models.Voucher) (models.Voucher, error)

	// ListVouchersByAgency returns the tenant's vouchers (without nested
	// records) ordered by creation time, newest first.
	ListVouchersByAgency(ctx context.Context, agencyID string) ([]models.Voucher, error)

	// FindVoucherByID retrieves one voucher with nested records, scoped to
	// the given tenant. Returns [ErrVoucherNotFound] when no voucher matches.
	FindVoucherByID(ctx context.Context, agencyID, id string) (models.Voucher, error)

	// FindVoucherByReservationCode retrieves one voucher with nested records
	// by a case-insensitive reservation-code match, regardless of tenant.
	// Returns [ErrVoucherNotFound] when no voucher matches.
	FindVoucherByReservationCode(ctx context.Context, code string) (models.Voucher, error)
}
