package http

import (
	"encoding/json"
	"net/http"

	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/utils"
	"github.com/pocketdiary/diary-server/models"
)

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProfileService.UpdateName(ctx, req); err != nil {
		log.Err(err).Msg("name update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProfileService.UpdatePassword(ctx, req); err != nil {
		log.Err(err).Msg("password update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
}

func (h *Handler) updateTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProfileService.UpdateTheme(ctx, req); err != nil {
		log.Err(err).Msg("theme update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	found, err := h.services.ProfileService.DeleteAccount(ctx, req)
	if err != nil {
		log.Err(err).Msg("account deletion failed")
		writeError(w, err)
		return
	}

	// a non-matching credential triple is reported, not rejected: the
	// account is equally gone either way
	if !found {
		utils.WriteJSON(w, models.MessageResponse{Message: "no user found"}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
}
