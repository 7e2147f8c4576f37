package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents a notifications row. At most one row is active at a
// time: publishing a new notification deactivates every previous one.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
}

// NotificationInput holds the publishable notification fields.
type NotificationInput struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedBy uuid.UUID `json:"createdBy"`
}
