package http

import (
	"errors"
	"net/http"

	"github.com/rotaviva/voucher-api/internal/adapter"
	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/service"
	"github.com/rotaviva/voucher-api/internal/store"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/internal/validators"
	"github.com/rotaviva/voucher-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNameRequired:        http.StatusBadRequest,
	service.ErrSlugRequired:        http.StatusBadRequest,
	service.ErrEmailRequired:       http.StatusBadRequest,
	service.ErrStatusRequired:      http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrLogoTypeNotAllowed:  http.StatusBadRequest,
	service.ErrLogoTooLarge:        http.StatusBadRequest,
	service.ErrLogoDataInvalid:     http.StatusBadRequest,
	errInvalidJSON:                 http.StatusBadRequest,

	validators.ErrNoAgencyID:        http.StatusBadRequest,
	validators.ErrNoReservationCode: http.StatusBadRequest,
	validators.ErrNoClientName:      http.StatusBadRequest,
	validators.ErrNoFlights:         http.StatusBadRequest,
	validators.ErrUnknownDirection:  http.StatusBadRequest,
	validators.ErrMissingDirections: http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrEmptyToken:                      http.StatusUnauthorized,

	service.ErrAgencyInactive: http.StatusForbidden,
	ErrForbidden:              http.StatusForbidden,

	store.ErrNoUserWasFound:  http.StatusNotFound,
	store.ErrAgencyNotFound:  http.StatusNotFound,
	store.ErrVoucherNotFound: http.StatusNotFound,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrSlugAlreadyExists:     http.StatusConflict,
	store.ErrReservationCodeExists: http.StatusConflict,

	adapter.ErrUpstreamFailure: http.StatusBadGateway,
	adapter.ErrNotConfigured:   http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates err into the HTTP taxonomy and writes the uniform
// JSON error body. Unmapped errors are logged in full but surfaced opaquely.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Err(err).Int("status", status).Send()
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
