package http

import (
	"encoding/json"
	"net/http"

	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/utils"
	"github.com/pocketdiary/diary-server/models"
)

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.NotesService.AddNote(ctx, req); err != nil {
		log.Err(err).Msg("note creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
}

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.NotesQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	notes, err := h.services.NotesService.GetNotes(ctx, req)
	if err != nil {
		log.Err(err).Msg("note lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NotesResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) getTodayNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	notes, err := h.services.NotesService.GetTodayNotes(ctx, req)
	if err != nil {
		log.Err(err).Msg("today's note lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NotesResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeleteNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.NotesService.DeleteNote(ctx, req); err != nil {
		log.Err(err).Msg("note deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
}
