package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"soothe/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// replyWait bounds one model round trip, matching the upstream client timeout
	replyWait = 35 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // native app clients, no browser origin to check
	},
}

// MessageType defines the type of WebSocket frame
type MessageType string

const (
	MsgUserMessage MessageType = "user_message"
	MsgReply       MessageType = "reply"
	MsgError       MessageType = "error"
)

// Frame is the WebSocket envelope format
type Frame struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// chatConn serializes writes: replies and pings come from different
// goroutines and gorilla permits one concurrent writer.
type chatConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *chatConn) writeFrame(msgType MessageType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(&Frame{Type: msgType, Payload: data}); err != nil {
		log.Printf("chat ws write error: %v", err)
	}
}

func (c *chatConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Handler serves the chat WebSocket transport. One connection drives one chat
// session; each inbound user message produces one reply frame.
type Handler struct {
	chatSvc *service.ChatService
	authSvc *service.AuthService
}

// NewHandler creates a new WebSocket handler
func NewHandler(chatSvc *service.ChatService, authSvc *service.AuthService) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		authSvc: authSvc,
	}
}

// ChatWS handles GET /v1/ws/chat/{sessionId}
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	// Ownership check before the upgrade so failures stay plain HTTP
	if _, err := h.chatSvc.GetSession(r.Context(), claims.UserID, sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	log.Printf("User %s connected to chat session %s via WebSocket", claims.UserID, sessionID)
	go h.serve(conn, claims.UserID, sessionID)
}

func (h *Handler) serve(conn *websocket.Conn, userID, sessionID string) {
	defer conn.Close()

	cc := &chatConn{conn: conn}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go pingLoop(cc, done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("chat ws read error for session %s: %v", sessionID, err)
			}
			return
		}

		content := string(data)
		var frame Frame
		if err := json.Unmarshal(data, &frame); err == nil && frame.Type == MsgUserMessage {
			var payload struct {
				Content string `json:"content"`
			}
			if err := json.Unmarshal(frame.Payload, &payload); err == nil {
				content = payload.Content
			}
		}
		if strings.TrimSpace(content) == "" {
			continue
		}
		conn.SetReadDeadline(time.Now().Add(pongWait + replyWait))

		ctx, cancel := context.WithTimeout(context.Background(), replyWait)
		reply, err := h.chatSvc.SendMessage(ctx, userID, sessionID, content)
		cancel()
		if err != nil {
			cc.writeFrame(MsgError, map[string]string{"error": "could not generate a response right now"})
			log.Printf("chat ws send for session %s failed: %v", sessionID, err)
			continue
		}

		cc.writeFrame(MsgReply, reply)
		conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

func pingLoop(cc *chatConn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := cc.ping(); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
