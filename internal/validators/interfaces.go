package validators

import (
	"github.com/rotaviva/voucher-api/models"
)

// VoucherValidator checks voucher-creation payloads before any persistence
// work starts. Implementations must be side-effect free.
type VoucherValidator interface {
	// ValidateCreate verifies the payload against the creation rules, in
	// order: agency attachment, reservation code, client name, flight list
	// presence, direction coverage. The first violated rule is returned.
	ValidateCreate(agencyID string, req models.CreateVoucherRequest) error
}
