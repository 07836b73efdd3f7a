package model

import "time"

// Suggestion is a persisted AI-generated coping suggestion for a topic
type Suggestion struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	TopicID     string      `json:"topicId" bson:"topicId"`
	UserID      string      `json:"userId" bson:"userId"`
	Text        string      `json:"text" bson:"text"`
	Type        string      `json:"type" bson:"type"` // e.g. "immediate", "preparation", "mindset"
	Personality Personality `json:"personality" bson:"personality"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
}

// PriorSuggestion echoes a previously generated suggestion back to the model
// so it can steer away from repeating itself
type PriorSuggestion struct {
	Text string `json:"text" bson:"text"`
	Type string `json:"type" bson:"type"`
}

// GeneratedSuggestion is the canonical shape every accepted upstream response
// variant collapses into, before persistence assigns IDs
type GeneratedSuggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// TokenUsage is passed through verbatim from the upstream API
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}
