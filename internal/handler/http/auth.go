package http

import (
	"encoding/json"
	"net/http"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/utils"
	"github.com/rotaviva/voucher-api/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, r, err)
		return
	}

	log.Debug().Str("userID", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  user,
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		respondError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "password updated"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		respondError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	response, err := h.services.AuthService.Me(ctx, identity.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
