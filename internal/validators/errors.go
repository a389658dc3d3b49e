package validators

import "errors"

// Validation errors returned by [VoucherValidator.ValidateCreate]. Each maps
// to a 400 response with its message used verbatim in the body.
var (
	// ErrNoAgencyID is returned when the authenticated identity carries no
	// tenant, which makes voucher creation impossible.
	ErrNoAgencyID = errors.New("your user has no agency attached, contact support")

	// ErrNoReservationCode is returned when the reservation code is missing
	// or blank.
	ErrNoReservationCode = errors.New("reservationCode is required")

	// ErrNoClientName is returned when the client name is missing or blank.
	ErrNoClientName = errors.New("clientName is required")

	// ErrNoFlights is returned when the flights array is missing or empty.
	ErrNoFlights = errors.New("flights is required")

	// ErrMissingDirections is returned when the flights array lacks an
	// OUTBOUND or a RETURN entry.
	ErrMissingDirections = errors.New("include flights with direction OUTBOUND and RETURN")

	// ErrUnknownDirection is returned when a flight declares a direction
	// other than OUTBOUND or RETURN.
	ErrUnknownDirection = errors.New("flight direction must be OUTBOUND or RETURN")
)
