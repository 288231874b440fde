package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notification row for one user.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Kind      string     `json:"kind"`
	Message   string     `json:"message"`
	ActionURL string     `json:"action_url,omitempty"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
