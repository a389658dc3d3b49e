package validators

import (
	"strings"

	"github.com/rotaviva/voucher-api/models"
)

// voucherValidator is the default [VoucherValidator] implementation.
type voucherValidator struct{}

// NewVoucherValidator constructs a stateless [VoucherValidator].
func NewVoucherValidator() VoucherValidator {
	return &voucherValidator{}
}

// ValidateCreate implements [VoucherValidator]. Checks run in the documented
// order and stop at the first failure so the caller can surface a single
// actionable message.
func (v *voucherValidator) ValidateCreate(agencyID string, req models.CreateVoucherRequest) error {
	if agencyID == "" {
		return ErrNoAgencyID
	}

	if strings.TrimSpace(req.ReservationCode) == "" {
		return ErrNoReservationCode
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return ErrNoClientName
	}

	if len(req.Flights) == 0 {
		return ErrNoFlights
	}

	hasOutbound := false
	hasReturn := false
	for _, flight := range req.Flights {
		switch flight.Direction {
		case models.DirectionOutbound:
			hasOutbound = true
		case models.DirectionReturn:
			hasReturn = true
		default:
			return ErrUnknownDirection
		}
	}

	if !hasOutbound || !hasReturn {
		return ErrMissingDirections
	}

	return nil
}
