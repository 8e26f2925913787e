package http

import (
	"encoding/json"
	"net/http"

	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/utils"
	"github.com/pocketdiary/diary-server/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	reply, err := h.services.ChatService.Chat(ctx, req)
	if err != nil {
		log.Err(err).Msg("chat completion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ChatResponse{Reply: reply}, http.StatusOK)
}
