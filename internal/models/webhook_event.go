package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WebhookEvent is an audit row for every verified identity webhook
// delivery. SvixID repeats when Clerk redelivers the same message.
type WebhookEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SvixID    string         `gorm:"size:255;not null;index" json:"svix_id"`
	EventType string         `gorm:"size:50;not null;index" json:"event_type"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}
