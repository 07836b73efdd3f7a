package model

import "time"

// User is a registered app user
type User struct {
	ID                 string      `json:"id" bson:"_id,omitempty"`
	Email              string      `json:"email" bson:"email"`
	PasswordHash       string      `json:"-" bson:"passwordHash"`
	DisplayName        string      `json:"displayName" bson:"displayName"`
	DefaultPersonality Personality `json:"defaultPersonality" bson:"defaultPersonality"`
	CreatedAt          time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt" bson:"updatedAt"`
}
