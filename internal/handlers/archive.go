package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emily-backend/internal/repository"
)

// ArchiveHandler serves persisted transcripts. Only mounted when a database
// is configured; its routes sit behind JWT auth.
type ArchiveHandler struct {
	transcripts *repository.TranscriptRepo
}

func NewArchiveHandler(transcripts *repository.TranscriptRepo) *ArchiveHandler {
	return &ArchiveHandler{transcripts: transcripts}
}

func (h *ArchiveHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid session ID", r))
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := h.transcripts.ListBySession(r.Context(), sessionID.String(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("ARCHIVE_ERROR", "Failed to load transcript", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
