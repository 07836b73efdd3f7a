package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"soothe/internal/service"
	"soothe/internal/transport/rest/handler"
	"soothe/internal/transport/rest/middleware"
	"soothe/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	TopicService      *service.TopicService
	SuggestionService *service.SuggestionService
	GeneratorService  *service.GeneratorService
	ChatService       *service.ChatService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	topicHandler := handler.NewTopicHandler(c.TopicService)
	suggestionHandler := handler.NewSuggestionHandler(c.SuggestionService, c.GeneratorService)
	chatHandler := handler.NewChatHandler(c.ChatService)
	healthHandler := handler.NewHealthHandler(c.GeneratorService)
	wsHandler := ws.NewHandler(c.ChatService, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/health/ai", healthHandler.AI).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/topics", topicHandler.Create).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/topics", topicHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/topics/{topicId}", topicHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/topics/{topicId}", topicHandler.Update).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/topics/{topicId}", topicHandler.Delete).Methods("DELETE", "OPTIONS")

	userRoutes.HandleFunc("/suggestions", suggestionHandler.GenerateAdhoc).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/topics/{topicId}/suggestions", suggestionHandler.Generate).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/topics/{topicId}/suggestions", suggestionHandler.List).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/chat/sessions", chatHandler.StartSession).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/chat/sessions", chatHandler.ListSessions).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/chat/sessions/{sessionId}", chatHandler.GetSession).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/chat/sessions/{sessionId}", chatHandler.DeleteSession).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/chat/sessions/{sessionId}/messages", chatHandler.SendMessage).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/chat/{sessionId}", wsHandler.ChatWS).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
