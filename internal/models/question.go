package models

import (
	"time"

	"github.com/google/uuid"
)

// Question stores one asked question and its generated answer. Rows are
// append-only; nothing in the system updates or deletes them.
type Question struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"projectId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
