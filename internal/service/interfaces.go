package service

import (
	"context"

	"github.com/rotaviva/voucher-api/models"
)

// AuthService owns login, token lifecycle, and password rotation.
type AuthService interface {
	// Login authenticates by email and password and returns the account.
	// Unknown email and wrong password are indistinguishable to the caller
	// ([ErrInvalidCredentials]); non-superadmins with a missing or inactive
	// agency are rejected with [ErrAgencyInactive].
	Login(ctx context.Context, email, password string) (models.User, error)

	// ChangePassword verifies the current password and stores a bcrypt hash
	// of the new one.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error

	// Me returns the account and its owning agency (nil for superadmins).
	Me(ctx context.Context, userID string) (models.MeResponse, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AgencyService owns tenant lifecycle, branding, logo upload, and first-user
// provisioning.
type AgencyService interface {
	CreateAgency(ctx context.Context, req models.CreateAgencyRequest) (models.Agency, error)
	ListAgencies(ctx context.Context) ([]models.Agency, error)
	UpdateAgencyStatus(ctx context.Context, agencyID string, req models.UpdateAgencyStatusRequest) (models.Agency, error)
	UpdateAgencyBranding(ctx context.Context, agencyID string, req models.UpdateAgencyBrandingRequest) (models.Agency, error)
	CreateAgencyUser(ctx context.Context, agencyID string, req models.CreateAgencyUserRequest) (models.User, error)
	UploadLogo(ctx context.Context, agencyID string, req models.UploadLogoRequest) (models.UploadLogoResponse, error)
}

// VoucherService owns the voucher creation pipeline and tenant-scoped reads.
type VoucherService interface {
	// CreateVoucher validates the payload, expands multi-segment flights,
	// persists everything atomically, and returns the voucher with flights
	// in display order. The owning agency always comes from the caller's
	// identity.
	CreateVoucher(ctx context.Context, agencyID string, req models.CreateVoucherRequest) (models.Voucher, error)

	// ListVouchers returns the tenant's vouchers, newest first.
	ListVouchers(ctx context.Context, agencyID string) ([]models.Voucher, error)

	// GetVoucher returns one voucher with nested records, tenant-scoped.
	GetVoucher(ctx context.Context, agencyID, voucherID string) (models.Voucher, error)

	// PublicLookup resolves a reservation code case-insensitively. Vouchers
	// of deactivated agencies are reported as not found.
	PublicLookup(ctx context.Context, reservationCode string) (models.Voucher, error)
}
