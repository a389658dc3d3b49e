package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rotaviva/voucher-api/internal/metrics"
	"github.com/rotaviva/voucher-api/internal/store"
	"github.com/rotaviva/voucher-api/internal/utils"
)

// publicVoucher is the unauthenticated traveler lookup. Reservation codes
// match case-insensitively; vouchers of deactivated agencies come back as
// 404 indistinguishable from an absent code.
func (h *Handler) publicVoucher(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "reservationCode")

	voucher, err := h.services.VoucherService.PublicLookup(r.Context(), code)
	if err != nil {
		if errors.Is(err, store.ErrVoucherNotFound) {
			metrics.PublicLookupsTotal.WithLabelValues("not_found").Inc()
		}
		respondError(w, r, err)
		return
	}

	metrics.PublicLookupsTotal.WithLabelValues("found").Inc()

	utils.WriteJSON(w, voucher, http.StatusOK)
}
