package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"soothe/internal/model"
	"soothe/internal/service"
	"soothe/internal/transport/rest/middleware"
)

// SuggestionHandler handles suggestion endpoints
type SuggestionHandler struct {
	suggestionSvc *service.SuggestionService
	generator     service.Generator
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionSvc *service.SuggestionService, generator service.Generator) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionSvc: suggestionSvc,
		generator:     generator,
	}
}

// GenerateRequest is the request body for topic-scoped generation
type GenerateRequest struct {
	Context     string                  `json:"context"`
	History     []model.PriorSuggestion `json:"history"`
	Personality string                  `json:"personality"`
}

// AdhocRequest is the request body for one-off generation without a stored
// topic. The iOS client uses this before the user saves anything.
type AdhocRequest struct {
	Title        string                  `json:"title"`
	TitleContext string                  `json:"title_context"`
	History      []model.PriorSuggestion `json:"history"`
	Personality  string                  `json:"personality"`
}

// Generate handles POST /v1/topics/{topicId}/suggestions
func (h *SuggestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	topicID := mux.Vars(r)["topicId"]

	// An empty body is fine: every knob has a sensible default
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.suggestionSvc.Generate(r.Context(), userID, topicID, service.GenerateOptions{
		Context:     req.Context,
		History:     req.History,
		Personality: req.Personality,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GenerateAdhoc handles POST /v1/suggestions
func (h *SuggestionHandler) GenerateAdhoc(w http.ResponseWriter, r *http.Request) {
	var req AdhocRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(title) > 200 {
		writeError(w, http.StatusBadRequest, "title must be at most 200 characters")
		return
	}

	result, err := h.generator.GenerateSuggestions(r.Context(), &service.GenerateRequest{
		Topic:       title,
		Context:     req.TitleContext,
		History:     req.History,
		Personality: model.ParsePersonality(req.Personality),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// List handles GET /v1/topics/{topicId}/suggestions
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	topicID := mux.Vars(r)["topicId"]

	suggestions, err := h.suggestionSvc.ListStored(r.Context(), userID, topicID, 0)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []*model.Suggestion{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}
