package http

import (
	"net/http"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/utils"
)

// banner answers the root path with a small service descriptor.
func (h *Handler) banner(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"service": "voucher-api",
		"status":  "ok",
	}, http.StatusOK)
}

// health is the liveness probe: it pings the database and reports 503 when
// the ping fails.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.db.PingContext(r.Context()); err != nil {
		log.Err(err).Msg("database ping failed")
		utils.WriteJSON(w, map[string]string{
			"status":   "degraded",
			"database": "down",
		}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, map[string]string{
		"status":   "ok",
		"database": "up",
	}, http.StatusOK)
}
