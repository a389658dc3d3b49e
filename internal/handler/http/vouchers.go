package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/metrics"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/models"
)

// callerAgencyID resolves the tenant of the authenticated caller. The owning
// agency of a voucher is always taken from the token, never from the body.
func callerAgencyID(r *http.Request) (string, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok || identity.AgencyID == nil {
		return "", ok
	}
	return *identity.AgencyID, true
}

func (h *Handler) createVoucher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agencyID, authed := callerAgencyID(r)
	if !authed {
		respondError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	voucher, err := h.services.VoucherService.CreateVoucher(ctx, agencyID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	metrics.VouchersCreatedTotal.Inc()
	log.Debug().Str("voucherID", voucher.ID).Msg("voucher created")

	utils.WriteJSON(w, voucher, http.StatusCreated)
}

func (h *Handler) listVouchers(w http.ResponseWriter, r *http.Request) {
	agencyID, authed := callerAgencyID(r)
	if !authed {
		respondError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	vouchers, err := h.services.VoucherService.ListVouchers(r.Context(), agencyID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, vouchers, http.StatusOK)
}

func (h *Handler) getVoucher(w http.ResponseWriter, r *http.Request) {
	agencyID, authed := callerAgencyID(r)
	if !authed {
		respondError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	voucherID := chi.URLParam(r, "voucherId")

	voucher, err := h.services.VoucherService.GetVoucher(r.Context(), agencyID, voucherID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, voucher, http.StatusOK)
}
