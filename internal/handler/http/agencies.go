package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/models"
)

func (h *Handler) createAgency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	agency, err := h.services.AgencyService.CreateAgency(ctx, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, agency, http.StatusCreated)
}

func (h *Handler) listAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.services.AgencyService.ListAgencies(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, agencies, http.StatusOK)
}

func (h *Handler) updateAgencyStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agencyID := chi.URLParam(r, "agencyId")

	var req models.UpdateAgencyStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	agency, err := h.services.AgencyService.UpdateAgencyStatus(ctx, agencyID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, agency, http.StatusOK)
}

func (h *Handler) updateAgencyBranding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agencyID := chi.URLParam(r, "agencyId")

	var req models.UpdateAgencyBrandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	agency, err := h.services.AgencyService.UpdateAgencyBranding(ctx, agencyID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, agency, http.StatusOK)
}

func (h *Handler) uploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agencyID := chi.URLParam(r, "agencyId")

	var req models.UploadLogoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	response, err := h.services.AgencyService.UploadLogo(ctx, agencyID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) createAgencyUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agencyID := chi.URLParam(r, "agencyId")

	var req models.CreateAgencyUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	user, err := h.services.AgencyService.CreateAgencyUser(ctx, agencyID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}
