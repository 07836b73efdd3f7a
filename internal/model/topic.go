package model

import "time"

// Topic is a user-created description of an anxiety-inducing task or situation
type Topic struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	UserID      string      `json:"userId" bson:"userId"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Personality Personality `json:"personality" bson:"personality"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updatedAt"`
}
