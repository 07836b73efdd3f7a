package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"soothe/internal/model"
	"soothe/internal/service"
	"soothe/internal/transport/rest/middleware"
)

// ChatHandler handles chat session endpoints
type ChatHandler struct {
	chatSvc *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// StartSessionRequest is the request body for creating a chat session
type StartSessionRequest struct {
	Personality string `json:"personality"`
	Title       string `json:"title"`
}

// SendMessageRequest is the request body for sending a chat message
type SendMessageRequest struct {
	Content string `json:"content"`
}

// StartSession handles POST /v1/chat/sessions
func (h *ChatHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.chatSvc.StartSession(r.Context(), middleware.GetUserID(r.Context()), req.Personality, req.Title)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// ListSessions handles GET /v1/chat/sessions
func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.chatSvc.ListSessions(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if sessions == nil {
		sessions = []*model.ChatSession{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// GetSession handles GET /v1/chat/sessions/{sessionId}
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.chatSvc.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	messages, err := h.chatSvc.ListMessages(r.Context(), userID, sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if messages == nil {
		messages = []*model.ChatMessage{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session":  session,
		"messages": messages,
	})
}

// DeleteSession handles DELETE /v1/chat/sessions/{sessionId}
func (h *ChatHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	err := h.chatSvc.DeleteSession(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SendMessage handles POST /v1/chat/sessions/{sessionId}/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	reply, err := h.chatSvc.SendMessage(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["sessionId"], req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}
