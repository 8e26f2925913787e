package http

import (
	"net/http"

	"github.com/pocketdiary/diary-server/internal/utils"
	"github.com/pocketdiary/diary-server/models"
)

// ping is the liveness endpoint. The keep-alive worker hits it periodically
// so free-tier hosting does not idle the process out.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "pong"}, http.StatusOK)
}
