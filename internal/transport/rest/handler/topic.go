package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"soothe/internal/model"
	"soothe/internal/service"
	"soothe/internal/transport/rest/middleware"
)

// TopicHandler handles topic endpoints
type TopicHandler struct {
	topicSvc *service.TopicService
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(topicSvc *service.TopicService) *TopicHandler {
	return &TopicHandler{topicSvc: topicSvc}
}

// TopicRequest is the request body for creating or updating a topic
type TopicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Personality string `json:"personality"`
}

func (req *TopicRequest) validate() string {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "title is required"
	}
	if len(title) > 200 {
		return "title must be at most 200 characters"
	}
	return ""
}

// Create handles POST /v1/topics
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req TopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	topic := &model.Topic{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Personality: model.ParsePersonality(req.Personality),
	}

	id, err := h.topicSvc.Create(r.Context(), topic)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	topic.ID = id

	writeJSON(w, http.StatusCreated, topic)
}

// List handles GET /v1/topics
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicSvc.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if topics == nil {
		topics = []*model.Topic{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"topics": topics})
}

// Get handles GET /v1/topics/{topicId}
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	topic, err := h.topicSvc.Get(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["topicId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, topic)
}

// Update handles PUT /v1/topics/{topicId}
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req TopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	topic := &model.Topic{
		ID:          mux.Vars(r)["topicId"],
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Personality: model.ParsePersonality(req.Personality),
	}

	if err := h.topicSvc.Update(r.Context(), userID, topic); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, topic)
}

// Delete handles DELETE /v1/topics/{topicId}
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.topicSvc.Delete(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["topicId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
