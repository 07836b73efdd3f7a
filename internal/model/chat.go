package model

import "time"

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatSession is a conversation between a user and one AI personality
type ChatSession struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	UserID      string      `json:"userId" bson:"userId"`
	Personality Personality `json:"personality" bson:"personality"`
	Title       string      `json:"title" bson:"title"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// ChatMessage is a single turn in a chat session
type ChatMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SessionID string    `json:"sessionId" bson:"sessionId"`
	Role      string    `json:"role" bson:"role"` // user or assistant
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
