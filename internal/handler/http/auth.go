package http

import (
	"encoding/json"
	"net/http"

	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/utils"
	"github.com/pocketdiary/diary-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Register(ctx, req); err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Msg("user successfully logged in")

	utils.WriteJSON(w, session, http.StatusOK)
}

// writeError maps err to its HTTP status and writes a JSON error body.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.MessageResponse{Message: errorMessage(err, status)}, status)
}
