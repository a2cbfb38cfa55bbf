package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"emily-backend/internal/chat"
	"emily-backend/internal/models"
)

type ChatHandler struct {
	sessions *chat.Manager
}

func NewChatHandler(sessions *chat.Manager) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

// CreateSession provisions a fresh conversation seeded with the greeting.
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, orch := h.sessions.CreateSession()

	writeJSON(w, http.StatusCreated, models.SessionResponse{
		SessionID: id,
		Messages:  orch.Messages(),
	})
}

// SendMessage runs one conversational turn and returns the settled bot reply.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	orch, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	reply := orch.Submit(r.Context(), req.Message)
	writeJSON(w, http.StatusOK, models.SendMessageResponse{Reply: reply})
}

// ListMessages returns the full in-session log plus the composing flag.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	orch, ok := h.session(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, models.MessagesResponse{
		Messages:  orch.Messages(),
		Composing: orch.Composing(),
	})
}

// ClearMessages resets the conversation to the canonical greeting.
func (h *ChatHandler) ClearMessages(w http.ResponseWriter, r *http.Request) {
	orch, ok := h.session(w, r)
	if !ok {
		return
	}

	orch.Clear()
	writeJSON(w, http.StatusOK, models.MessagesResponse{Messages: orch.Messages()})
}

func (h *ChatHandler) session(w http.ResponseWriter, r *http.Request) (*chat.Orchestrator, bool) {
	orch, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found", r))
		return nil, false
	}
	return orch, true
}
